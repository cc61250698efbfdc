// Package auth checks HS256 bearer tokens on API requests.
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MrJamesThe3rd/costbook/internal/http/respond"
)

type ctxKey struct{}

// Middleware rejects requests without a valid bearer token signed with secret.
// The token subject is stored on the request context.
func Middleware(secret []byte) func(http.Handler) http.Handler {
	keyFunc := func(*jwt.Token) (any, error) { return secret, nil }

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || raw == "" {
				unauthorized(w, "missing bearer token")
				return
			}

			token, err := jwt.Parse(raw, keyFunc, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil {
				unauthorized(w, "invalid token")
				return
			}

			sub, _ := token.Claims.GetSubject()

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, sub)))
		})
	}
}

// Subject returns the authenticated token subject, if any.
func Subject(ctx context.Context) string {
	s, _ := ctx.Value(ctxKey{}).(string)
	return s
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="costbook"`)
	respond.JSON(w, http.StatusUnauthorized, map[string]string{"error": msg})
}
