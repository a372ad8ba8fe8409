package api

import (
	"context"

	"github.com/fulldump/firelite/accounts"
)

type loginUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func loginUser(ctx context.Context, input loginUserRequest) (*accounts.User, error) {
	return getAccounts(ctx).LoginUser(ctx, input.Email, input.Password)
}
