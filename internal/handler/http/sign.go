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

func (h *Handler) detectSign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, msgInvalidToken, http.StatusUnauthorized)
		return
	}

	var req models.DetectSignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Request body is missing", http.StatusBadRequest)
		return
	}

	detection, err := h.services.SignHistoryService.SaveDetection(ctx, userID, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			writeError(w, "Detected sign is required", http.StatusBadRequest)
			return
		}

		log.Err(err).Msg("unexpected error occurred during sign detection save")
		writeError(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.DetectionResponse{
		Success:   true,
		Detection: detection,
	}, http.StatusCreated)
}

func (h *Handler) signHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, msgInvalidToken, http.StatusUnauthorized)
		return
	}

	detections, total, page, err := h.services.SignHistoryService.History(ctx, userID, parsePage(r))
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during sign history listing")
		writeError(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.SignHistoryResponse{
		Success:    true,
		Detections: detections,
		Total:      total,
		Limit:      page.Limit,
		Offset:     page.Offset,
	}, http.StatusOK)
}

func (h *Handler) deleteSignDetection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, msgInvalidToken, http.StatusUnauthorized)
		return
	}

	id, err := idParam(r)
	if err != nil {
		writeError(w, "Detection not found", http.StatusNotFound)
		return
	}

	if err := h.services.SignHistoryService.DeleteDetection(ctx, userID, id); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			writeError(w, "Detection not found", http.StatusNotFound)
			return
		}

		log.Err(err).Msg("unexpected error occurred during sign detection deletion")
		writeError(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{
		Success: true,
		Message: "Detection deleted successfully",
	}, http.StatusOK)
}
