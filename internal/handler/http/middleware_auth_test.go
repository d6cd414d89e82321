package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/signbridge/signbridge/internal/service"
	"github.com/signbridge/signbridge/internal/utils"
	"github.com/signbridge/signbridge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_RejectsWithoutToken(t *testing.T) {
	router := newTestHandler(testServices()).Init()

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "empty token", header: "Bearer "},
		{name: "token only", header: "signed.jwt.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)

			var resp models.ErrorResponse
			decodeBody(t, rec, &resp)
			assert.False(t, resp.Success)
			assert.Equal(t, "No token provided", resp.Message)
		})
	}
}

func TestAuthMiddleware_RejectsBadToken(t *testing.T) {
	services := testServices()
	services.AuthService = &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	router := newTestHandler(services).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer expired.or.forged")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp models.ErrorResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Invalid or expired token", resp.Message)
}

func TestAuthMiddleware_InjectsIdentity(t *testing.T) {
	services := testServices()
	services.AuthService = &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "signed.jwt.token", tokenString)
			return models.Token{
				SignedString: tokenString,
				Claims:       models.TokenClaims{UserID: 42, Email: "bob@example.com"},
			}, nil
		},
	}
	h := newTestHandler(services)

	var gotUserID int64
	var gotEmail string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		require.True(t, ok)
		gotUserID = userID

		email, ok := utils.GetUserEmailFromContext(r.Context())
		require.True(t, ok)
		gotEmail = email

		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer signed.jwt.token")
	rec := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(42), gotUserID)
	assert.Equal(t, "bob@example.com", gotEmail)
}
