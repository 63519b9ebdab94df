package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

type contextKey string

const identityContextKey = contextKey("identity")

// identity is the authenticated caller extracted from a verified access
// token. A nil identity in the request context means anonymous.
type identity struct {
	UserID int
	Role   string
}

func (app *Application) contextSetIdentity(r *http.Request, id *identity) *http.Request {
	ctx := context.WithValue(r.Context(), identityContextKey, id)
	return r.WithContext(ctx)
}

func (app *Application) contextGetIdentity(r *http.Request) *identity {
	id, _ := r.Context().Value(identityContextKey).(*identity)
	return id
}

func (app *Application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")

				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// authenticate resolves the bearer token when one is present. Requests
// without an Authorization header pass through as anonymous; a header that
// does not carry a valid access token is rejected outright.
func (app *Application) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Authorization")

		authorizationHeader := r.Header.Get("Authorization")
		if authorizationHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		headerParts := strings.Split(authorizationHeader, " ")
		if len(headerParts) != 2 || headerParts[0] != "Bearer" {
			app.invalidTokenResponse(w, r)
			return
		}

		claims, err := app.tokens.VerifyAccess(headerParts[1])
		if err != nil {
			app.invalidTokenResponse(w, r)
			return
		}

		r = app.contextSetIdentity(r, &identity{
			UserID: claims.UserID(),
			Role:   claims.Role,
		})

		next.ServeHTTP(w, r)
	})
}

func (app *Application) requireAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.contextGetIdentity(r) == nil {
			app.unauthorizedAccessResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}
