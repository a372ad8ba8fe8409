package api

import (
	"github.com/fulldump/box"

	"github.com/fulldump/firelite/accounts"
	"github.com/fulldump/firelite/store"
)

func Build(s *store.Store, a *accounts.Service, version string) *box.B {

	b := box.NewBox()

	v1 := b.Resource("/v1")
	v1.WithInterceptors(
		box.SetResponseHeader("Content-Type", "application/json"),
		injectStore(s),
		injectAccounts(a),
	)

	v1.Resource("/users").
		WithActions(
			box.Post(registerUser),
		)

	v1.Resource("/users/login").
		WithActions(
			box.Post(loginUser),
		)

	v1.Resource("/collections/{collectionName}").
		WithActions(
			box.Get(listDocuments),
			box.Post(addDocument),
			box.ActionPost(find),
		)

	v1.Resource("/collections/{collectionName}/documents/{documentId}").
		WithActions(
			box.Get(getDocument),
			box.Put(setDocument),
			box.Patch(patchDocument),
			box.Delete(deleteDocument),
		)

	b.Resource("/release").
		WithActions(box.Get(func() string {
			return version
		}))

	return b
}
