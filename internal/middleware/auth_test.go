package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-multidb-api/internal/model"
)

type stubVerifier struct {
	claims *model.AuthClaims
	err    error
}

func (s *stubVerifier) Verify(string) (*model.AuthClaims, error) {
	return s.claims, s.err
}

func protectedHandler(t *testing.T, expectClaims bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if expectClaims {
			require.True(t, ok)
			require.NotNil(t, claims)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuthMissingHeader(t *testing.T) {
	mw := NewAuthMiddleware(&stubVerifier{claims: &model.AuthClaims{UserID: 1}})
	handler := mw.RequireAuth(protectedHandler(t, false))

	for _, header := range []string{"", "Basic abc123", "Bearer", "Bearer "} {
		req := httptest.NewRequest(http.MethodDelete, "/api/users/1", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
		assert.Contains(t, rec.Body.String(), `"success":false`)
	}
}

func TestRequireAuthInvalidToken(t *testing.T) {
	mw := NewAuthMiddleware(&stubVerifier{err: errors.New("expired")})
	handler := mw.RequireAuth(protectedHandler(t, false))

	req := httptest.NewRequest(http.MethodDelete, "/api/users/1", nil)
	req.Header.Set("Authorization", "Bearer not-a-valid-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
}

func TestRequireAuthValidTokenAttachesClaims(t *testing.T) {
	claims := &model.AuthClaims{UserID: 42, Email: "ada@example.com", NickName: "ada"}
	mw := NewAuthMiddleware(&stubVerifier{claims: claims})

	var seen *model.AuthClaims
	handler := mw.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/verify-token", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, claims, seen)
}

func TestBearerTokenCaseInsensitiveScheme(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer abc.def.ghi")

	token, ok := bearerToken(req)
	assert.True(t, ok)
	assert.Equal(t, "abc.def.ghi", token)
}
