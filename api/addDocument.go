package api

import (
	"context"
	"net/http"

	"github.com/fulldump/box"

	"github.com/fulldump/firelite/store"
)

type documentResponse struct {
	ID       string         `json:"id"`
	Document store.Document `json:"document"`
}

func addDocument(ctx context.Context, document store.Document) (*documentResponse, error) {

	collection, err := getStore(ctx).Collection(box.GetUrlParameter(ctx, "collectionName"))
	if err != nil {
		return nil, err
	}

	ref, err := collection.Add(document)
	if err != nil {
		return nil, err
	}

	box.GetResponse(ctx).WriteHeader(http.StatusCreated)

	return &documentResponse{
		ID:       ref.ID,
		Document: document,
	}, nil
}
