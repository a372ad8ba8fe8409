package api

import (
	"context"

	"github.com/fulldump/box"

	"github.com/fulldump/firelite/store"
)

type findRequest struct {
	Filter map[string]interface{} `json:"filter"`
}

func find(ctx context.Context, input findRequest) ([]store.Document, error) {

	collection, err := getStore(ctx).Collection(box.GetUrlParameter(ctx, "collectionName"))
	if err != nil {
		return nil, err
	}

	if input.Filter == nil {
		input.Filter = map[string]interface{}{}
	}

	return collection.Find(input.Filter)
}
