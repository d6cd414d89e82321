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

func (h *Handler) saveMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, msgInvalidToken, http.StatusUnauthorized)
		return
	}

	var req models.SaveMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Request body is missing", http.StatusBadRequest)
		return
	}

	message, err := h.services.TextHistoryService.SaveMessage(ctx, userID, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			writeError(w, "Message text is required", http.StatusBadRequest)
			return
		}

		log.Err(err).Msg("unexpected error occurred during message save")
		writeError(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.TextMessageResponse{
		Success: true,
		Message: message,
	}, http.StatusCreated)
}

func (h *Handler) textHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, msgInvalidToken, http.StatusUnauthorized)
		return
	}

	messages, total, page, err := h.services.TextHistoryService.History(ctx, userID, parsePage(r))
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during text history listing")
		writeError(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.TextHistoryResponse{
		Success:  true,
		Messages: messages,
		Total:    total,
		Limit:    page.Limit,
		Offset:   page.Offset,
	}, http.StatusOK)
}

func (h *Handler) deleteMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, msgInvalidToken, http.StatusUnauthorized)
		return
	}

	id, err := idParam(r)
	if err != nil {
		writeError(w, "Message not found", http.StatusNotFound)
		return
	}

	if err := h.services.TextHistoryService.DeleteMessage(ctx, userID, id); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			writeError(w, "Message not found", http.StatusNotFound)
			return
		}

		log.Err(err).Msg("unexpected error occurred during message deletion")
		writeError(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{
		Success: true,
		Message: "Message deleted successfully",
	}, http.StatusOK)
}
