package api

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
	"github.com/fulldump/box"
	"golang.org/x/crypto/bcrypt"

	"github.com/fulldump/firelite/accounts"
	"github.com/fulldump/firelite/store"
)

type JSON = map[string]interface{}

func TestAcceptance(t *testing.T) {

	biff.Alternative("Setup", func(a *biff.A) {

		s := store.Open(filepath.Join(t.TempDir(), "firelite.json"))

		accountsService := accounts.NewService(s)
		accountsService.HashCost = bcrypt.MinCost

		b := Build(s, accountsService, "test")
		b.WithInterceptors(
			box.RecoverFromPanic,
			PrettyErrorInterceptor,
		)

		api := apitest.NewWithHandler(box.Box2Http(b))

		apiRequest := func(method, path string) *apitest.Request {
			return api.Request(method, "/v1"+path)
		}

		a.Alternative("Register user", func(a *biff.A) {
			resp := apiRequest("POST", "/users").WithBodyJson(JSON{
				"username": "validuser_1",
				"email":    "pablo@email.com",
				"password": "Sup3r-secret",
			}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusCreated)

			body := resp.BodyJsonMap()
			biff.AssertEqual(body["username"], "validuser_1")
			biff.AssertEqual(body["email"], "pablo@email.com")

			_, hasPassword := body["password"]
			biff.AssertFalse(hasPassword)

			a.Alternative("Login", func(a *biff.A) {
				resp := apiRequest("POST", "/users/login").WithBodyJson(JSON{
					"email":    "pablo@email.com",
					"password": "Sup3r-secret",
				}).Do()

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqual(resp.BodyJsonMap()["id"], body["id"])
			})

			a.Alternative("Login with wrong password", func(a *biff.A) {
				resp := apiRequest("POST", "/users/login").WithBodyJson(JSON{
					"email":    "pablo@email.com",
					"password": "Wr0ng-secret",
				}).Do()

				biff.AssertEqual(resp.StatusCode, http.StatusUnauthorized)
			})

			a.Alternative("Register duplicate email", func(a *biff.A) {
				resp := apiRequest("POST", "/users").WithBodyJson(JSON{
					"username": "other_user",
					"email":    "pablo@email.com",
					"password": "0ther-Secret",
				}).Do()

				biff.AssertEqual(resp.StatusCode, http.StatusConflict)
			})
		})

		a.Alternative("Register with invalid username", func(a *biff.A) {
			resp := apiRequest("POST", "/users").WithBodyJson(JSON{
				"username": "ab",
				"email":    "pablo@email.com",
				"password": "Sup3r-secret",
			}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		})

		a.Alternative("Login before any registration", func(a *biff.A) {
			resp := apiRequest("POST", "/users/login").WithBodyJson(JSON{
				"email":    "nobody@email.com",
				"password": "Sup3r-secret",
			}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
		})

		a.Alternative("Add document", func(a *biff.A) {
			resp := apiRequest("POST", "/collections/animals").WithBodyJson(JSON{
				"name": "Koala",
				"legs": 2,
			}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusCreated)

			body := resp.BodyJsonMap()
			id := body["id"].(string)
			biff.AssertEqual(body["document"].(JSON)["name"], "Koala")

			a.Alternative("Get document", func(a *biff.A) {
				resp := apiRequest("GET", "/collections/animals/documents/"+id).Do()

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqual(resp.BodyJsonMap()["document"].(JSON)["name"], "Koala")
			})

			a.Alternative("List documents", func(a *biff.A) {
				resp := apiRequest("GET", "/collections/animals").Do()

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqual(resp.BodyJsonMap()[id].(JSON)["name"], "Koala")
			})

			a.Alternative("Patch document", func(a *biff.A) {
				resp := apiRequest("PATCH", "/collections/animals/documents/"+id).
					WithBodyJson(JSON{"legs": 4}).Do()

				biff.AssertEqual(resp.StatusCode, http.StatusOK)

				document := resp.BodyJsonMap()["document"].(JSON)
				biff.AssertEqual(document["name"], "Koala")
				biff.AssertEqual(document["legs"], json.Number("4"))
			})

			a.Alternative("Set document", func(a *biff.A) {
				resp := apiRequest("PUT", "/collections/animals/documents/"+id).
					WithBodyJson(JSON{"name": "Wombat"}).Do()

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJsonMap()["document"], JSON{"name": "Wombat"})
			})

			a.Alternative("Delete document", func(a *biff.A) {
				resp := apiRequest("DELETE", "/collections/animals/documents/"+id).Do()

				biff.AssertEqual(resp.StatusCode, http.StatusNoContent)

				a.Alternative("Get deleted document", func(a *biff.A) {
					resp := apiRequest("GET", "/collections/animals/documents/"+id).Do()

					biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
				})
			})

			a.Alternative("Find with filter", func(a *biff.A) {
				resp := apiRequest("POST", "/collections/animals:find").WithBodyJson(JSON{
					"filter": JSON{"name": "Koala"},
				}).Do()

				biff.AssertEqual(resp.StatusCode, http.StatusOK)

				result := resp.BodyJson().([]interface{})
				biff.AssertEqual(len(result), 1)
				biff.AssertEqual(result[0].(JSON)["name"], "Koala")
			})
		})
	})
}
