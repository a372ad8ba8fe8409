package api

import (
	"context"

	"github.com/fulldump/box"

	"github.com/fulldump/firelite/accounts"
	"github.com/fulldump/firelite/store"
)

const ContextStoreKey = "0a67b1f6-49f8-11ee-97f3-d7a1e6b23a11"
const ContextAccountsKey = "117c3a04-49f8-11ee-97f3-33b217a4f2b9"

func injectStore(s *store.Store) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			next(context.WithValue(ctx, ContextStoreKey, s))
		}
	}
}

func getStore(ctx context.Context) *store.Store {
	return ctx.Value(ContextStoreKey).(*store.Store)
}

func injectAccounts(a *accounts.Service) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			next(context.WithValue(ctx, ContextAccountsKey, a))
		}
	}
}

func getAccounts(ctx context.Context) *accounts.Service {
	return ctx.Value(ContextAccountsKey).(*accounts.Service)
}
