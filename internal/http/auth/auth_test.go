package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/costbook/internal/http/auth"
)

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.Claims) string {
	t.Helper()

	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return s
}

func TestMiddleware(t *testing.T) {
	secret := []byte("s3cret")

	var gotSubject string

	h := auth.Middleware(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSubject = auth.Subject(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	valid := sign(t, jwt.SigningMethodHS256, secret, jwt.RegisteredClaims{
		Subject:   "site-manager",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	expired := sign(t, jwt.SigningMethodHS256, secret, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	wrongKey := sign(t, jwt.SigningMethodHS256, []byte("other"), jwt.RegisteredClaims{Subject: "x"})
	wrongAlg := sign(t, jwt.SigningMethodHS512, secret, jwt.RegisteredClaims{Subject: "x"})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"Valid", "Bearer " + valid, http.StatusNoContent},
		{"Missing", "", http.StatusUnauthorized},
		{"NotBearer", "Basic abc", http.StatusUnauthorized},
		{"Expired", "Bearer " + expired, http.StatusUnauthorized},
		{"WrongKey", "Bearer " + wrongKey, http.StatusUnauthorized},
		{"WrongAlgorithm", "Bearer " + wrongAlg, http.StatusUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gotSubject = ""

			req := httptest.NewRequest(http.MethodGet, "/api/v1/bills", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, tc.want, w.Code)

			if tc.want == http.StatusNoContent {
				assert.Equal(t, "site-manager", gotSubject)
			}
		})
	}
}
