package api

import (
	"context"

	"github.com/fulldump/box"

	"github.com/fulldump/firelite/store"
)

func listDocuments(ctx context.Context) (store.Collection, error) {

	collection, err := getStore(ctx).Collection(box.GetUrlParameter(ctx, "collectionName"))
	if err != nil {
		return nil, err
	}

	return collection.Get(), nil
}
