package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freshtrack-backend/pkg/auth"
)

func authProtected(t *testing.T, tokens *auth.TokenService) http.Handler {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := auth.GetUserFromContext(r.Context())
		require.NoError(t, err)
		w.Write([]byte(user.Email))
	})
	return Authenticate(tokens)(next)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", "freshtrack", time.Hour)
	token, err := tokens.Issue("a@b.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	authProtected(t, tokens).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a@b.com", rec.Body.String())
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", "freshtrack", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	rec := httptest.NewRecorder()

	authProtected(t, tokens).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Token is missing!"}`, rec.Body.String())
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", "freshtrack", time.Hour)

	tests := []struct {
		name   string
		header string
	}{
		{"no scheme", "some-token"},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"empty token", "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/items", nil)
			req.Header.Set("Authorization", tt.header)
			rec := httptest.NewRecorder()

			authProtected(t, tokens).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"message":"Bearer token malformed!"}`, rec.Body.String())
		})
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", "freshtrack", time.Hour)
	other := auth.NewTokenService("other-secret", "freshtrack", time.Hour)
	token, err := other.Issue("a@b.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	authProtected(t, tokens).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Token is invalid or expired!"}`, rec.Body.String())
}
