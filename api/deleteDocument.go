package api

import (
	"context"
	"net/http"

	"github.com/fulldump/box"
)

func deleteDocument(ctx context.Context) error {

	collection, err := getStore(ctx).Collection(box.GetUrlParameter(ctx, "collectionName"))
	if err != nil {
		return err
	}

	err = collection.Doc(box.GetUrlParameter(ctx, "documentId")).Delete()
	if err != nil {
		return err
	}

	box.GetResponse(ctx).WriteHeader(http.StatusNoContent)

	return nil
}
