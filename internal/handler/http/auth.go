package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/signbridge/signbridge/internal/logger"
	"github.com/signbridge/signbridge/internal/service"
	"github.com/signbridge/signbridge/internal/store"
	"github.com/signbridge/signbridge/internal/utils"
	"github.com/signbridge/signbridge/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Request body is missing", http.StatusBadRequest)
		return
	}

	registeredUser, token, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, "Name, email, and password are required", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			writeError(w, "User with this email already exists", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeError(w, msgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.AuthResponse{
		Success: true,
		User:    models.PublicProfile(registeredUser),
		Token:   token.SignedString,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Request body is missing", http.StatusBadRequest)
		return
	}

	foundUser, token, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, "Email and password are required", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("no user was found/wrong password")
			writeError(w, "Invalid email or password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeError(w, msgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.AuthResponse{
		Success: true,
		User:    models.PublicProfile(foundUser),
		Token:   token.SignedString,
	}, http.StatusOK)
}

// logout deletes the caller's session row. It always answers 200: deleting
// an already-deleted or unknown token is indistinguishable from success.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
	if err != nil {
		// unreachable behind the auth middleware, kept for direct use
		tokenString = ""
	}

	if err := h.services.AuthService.Logout(ctx, tokenString); err != nil {
		log.Err(err).Msg("unexpected error occurred during logout")
		writeError(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{
		Success: true,
		Message: "Logged out successfully",
	}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		writeError(w, msgInvalidToken, http.StatusUnauthorized)
		return
	}

	foundUser, err := h.services.AuthService.CurrentUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			writeError(w, "User not found", http.StatusNotFound)
			return
		}

		log.Err(err).Msg("unexpected error occurred during user lookup")
		writeError(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.UserResponse{
		Success: true,
		User:    models.PublicProfile(foundUser),
	}, http.StatusOK)
}
