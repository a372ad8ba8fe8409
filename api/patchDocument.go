package api

import (
	"context"

	"github.com/fulldump/box"

	"github.com/fulldump/firelite/store"
)

func patchDocument(ctx context.Context, partial store.Document) (*documentResponse, error) {

	collection, err := getStore(ctx).Collection(box.GetUrlParameter(ctx, "collectionName"))
	if err != nil {
		return nil, err
	}

	ref := collection.Doc(box.GetUrlParameter(ctx, "documentId"))

	err = ref.Update(partial)
	if err != nil {
		return nil, err
	}

	document, err := ref.Get()
	if err != nil {
		return nil, err
	}

	return &documentResponse{
		ID:       ref.ID,
		Document: document,
	}, nil
}
