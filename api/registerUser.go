package api

import (
	"context"
	"net/http"

	"github.com/fulldump/box"

	"github.com/fulldump/firelite/accounts"
)

type registerUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func registerUser(ctx context.Context, input registerUserRequest) (*accounts.User, error) {

	user, err := getAccounts(ctx).RegisterUser(ctx, input.Username, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	box.GetResponse(ctx).WriteHeader(http.StatusCreated)

	return user, nil
}
