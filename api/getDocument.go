package api

import (
	"context"

	"github.com/fulldump/box"
)

func getDocument(ctx context.Context) (*documentResponse, error) {

	collection, err := getStore(ctx).Collection(box.GetUrlParameter(ctx, "collectionName"))
	if err != nil {
		return nil, err
	}

	ref := collection.Doc(box.GetUrlParameter(ctx, "documentId"))

	document, err := ref.Get()
	if err != nil {
		return nil, err
	}

	return &documentResponse{
		ID:       ref.ID,
		Document: document,
	}, nil
}
