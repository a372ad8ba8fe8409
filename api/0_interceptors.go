package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/fulldump/box"
	"github.com/google/uuid"

	"github.com/fulldump/firelite/accounts"
	"github.com/fulldump/firelite/store"
)

func AccessLog(l *log.Logger) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			r := box.GetRequest(ctx)
			requestID := uuid.New().String()
			now := time.Now()
			defer func() {
				l.Println(requestID, now.UTC().Format(time.RFC3339Nano), formatRemoteAddr(r), r.Method, r.URL.String(), time.Since(now))
			}()

			next(ctx)
		}
	}
}

func formatRemoteAddr(r *http.Request) string {
	xorigin := strings.TrimSpace(strings.Split(
		r.Header.Get("X-Forwarded-For"), ",")[0])
	if xorigin != "" {
		return xorigin
	}

	return r.RemoteAddr[0:strings.LastIndex(r.RemoteAddr, ":")]
}

// PrettyErrorInterceptor maps the error taxonomy to HTTP statuses and a JSON
// error body.
func PrettyErrorInterceptor(next box.H) box.H {
	return func(ctx context.Context) {

		next(ctx)

		err := box.GetError(ctx)
		if err == nil {
			return
		}
		w := box.GetResponse(ctx)

		writeError := func(status int, description string) {
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"error": map[string]interface{}{
					"message":     err.Error(),
					"description": description,
				},
			})
		}

		var validationError *accounts.ValidationError

		switch {
		case errors.As(err, &validationError):
			writeError(http.StatusBadRequest, "field '"+validationError.Field+"' is not valid")

		case errors.Is(err, accounts.ErrDuplicateEmail):
			writeError(http.StatusConflict, "an account with this email already exists")

		case errors.Is(err, accounts.ErrUserNotFound):
			writeError(http.StatusNotFound, "no account matches this email")

		case errors.Is(err, accounts.ErrInvalidCredentials):
			writeError(http.StatusUnauthorized, "email and password do not match")

		case errors.Is(err, store.ErrDocumentNotFound):
			writeError(http.StatusNotFound, "document does not exist")

		case errors.Is(err, store.ErrCorruptState):
			writeError(http.StatusInternalServerError, "backing file is not a valid document tree")

		case err == box.ErrResourceNotFound:
			writeError(http.StatusNotFound, "resource '"+box.GetRequest(ctx).URL.String()+"' not found")

		case err == box.ErrMethodNotAllowed:
			writeError(http.StatusMethodNotAllowed, "method '"+box.GetRequest(ctx).Method+"' not allowed")

		default:
			var syntaxError *json.SyntaxError
			if errors.As(err, &syntaxError) {
				writeError(http.StatusBadRequest, "malformed JSON")
				return
			}
			writeError(http.StatusInternalServerError, "unexpected error")
		}
	}
}
