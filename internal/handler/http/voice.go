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

func (h *Handler) transcribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, msgInvalidToken, http.StatusUnauthorized)
		return
	}

	var req models.TranscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Request body is missing", http.StatusBadRequest)
		return
	}

	transcript, err := h.services.VoiceHistoryService.SaveTranscript(ctx, userID, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			writeError(w, "Transcript is required", http.StatusBadRequest)
			return
		}

		log.Err(err).Msg("unexpected error occurred during transcript save")
		writeError(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.TranscriptResponse{
		Success:    true,
		Transcript: transcript,
	}, http.StatusCreated)
}

func (h *Handler) voiceHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, msgInvalidToken, http.StatusUnauthorized)
		return
	}

	transcripts, total, page, err := h.services.VoiceHistoryService.History(ctx, userID, parsePage(r))
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during voice history listing")
		writeError(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.VoiceHistoryResponse{
		Success:     true,
		Transcripts: transcripts,
		Total:       total,
		Limit:       page.Limit,
		Offset:      page.Offset,
	}, http.StatusOK)
}

func (h *Handler) deleteTranscript(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, msgInvalidToken, http.StatusUnauthorized)
		return
	}

	id, err := idParam(r)
	if err != nil {
		writeError(w, "Transcript not found", http.StatusNotFound)
		return
	}

	if err := h.services.VoiceHistoryService.DeleteTranscript(ctx, userID, id); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			writeError(w, "Transcript not found", http.StatusNotFound)
			return
		}

		log.Err(err).Msg("unexpected error occurred during transcript deletion")
		writeError(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{
		Success: true,
		Message: "Transcript deleted successfully",
	}, http.StatusOK)
}
