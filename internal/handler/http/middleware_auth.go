package http

import (
	"context"
	"net/http"

	"github.com/signbridge/signbridge/internal/logger"
	"github.com/signbridge/signbridge/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// token, validates it via [service.AuthService.ParseToken], and on success
// stores the authenticated user's ID and email in the request context under
// [utils.UserIDCtxKey] and [utils.UserEmailCtxKey] before delegating to the
// next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in two shapes:
//   - "No token provided" when the header is absent, carries a scheme other
//     than Bearer, or carries an empty token.
//   - "Invalid or expired token" when the token fails verification for any
//     reason. The message never distinguishes a forged signature from an
//     expired claim.
//
// Token verification is purely cryptographic: the session store is not
// consulted, so a token whose session was deleted at logout remains
// accepted until its natural expiry.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, msgNoTokenProvided, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			writeError(w, msgNoTokenProvided, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("token verification failed")
			writeError(w, msgInvalidToken, http.StatusUnauthorized)
			return
		}

		// Store the authenticated identity in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.Claims.UserID)
		ctx = context.WithValue(ctx, utils.UserEmailCtxKey, token.Claims.Email)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
