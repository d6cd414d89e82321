package http

import (
	"encoding/json"
	"net/http"

	"github.com/signbridge/signbridge/internal/logger"
	"github.com/signbridge/signbridge/internal/utils"
	"github.com/signbridge/signbridge/models"
)

func (h *Handler) getPreferences(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, msgInvalidToken, http.StatusUnauthorized)
		return
	}

	preferences, err := h.services.PreferencesService.Get(ctx, userID)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during preferences lookup")
		writeError(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.PreferencesResponse{
		Success:     true,
		Preferences: preferences,
	}, http.StatusOK)
}

func (h *Handler) updatePreferences(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, msgInvalidToken, http.StatusUnauthorized)
		return
	}

	var req models.UpdatePreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Request body is missing", http.StatusBadRequest)
		return
	}

	preferences, err := h.services.PreferencesService.Update(ctx, userID, req)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during preferences update")
		writeError(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.PreferencesResponse{
		Success:     true,
		Preferences: preferences,
	}, http.StatusOK)
}
