package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/signbridge/signbridge/internal/logger"
	"github.com/signbridge/signbridge/internal/service"
	"github.com/signbridge/signbridge/internal/utils"
	"github.com/signbridge/signbridge/models"
)

func (h *Handler) translate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Request body is missing", http.StatusBadRequest)
		return
	}

	translation, err := h.services.TranslateService.Translate(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			writeError(w, "Text and target language are required", http.StatusBadRequest)
			return
		}

		log.Err(err).Msg("translation failed")
		writeError(w, "Failed to translate text", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.TranslateResponse{
		Success:        true,
		TranslatedText: translation.TranslatedText,
		Match:          translation.Match,
	}, http.StatusOK)
}
