package http

import (
	"net/http"

	"github.com/signbridge/signbridge/internal/logger"
	"github.com/signbridge/signbridge/internal/utils"
)

// maxPredictUploadBytes caps the in-memory portion of the multipart parse;
// larger frames spill to temporary files.
const maxPredictUploadBytes = 10 << 20

// predictError is the failure envelope of the prediction proxy. It differs
// from the rest of the API: this route forwards the ML service contract,
// which reports failures under an "error" key.
type predictError struct {
	Error string `json:"error"`
}

// predict forwards a single camera frame to the ML service and relays its
// prediction verbatim.
func (h *Handler) predict(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(maxPredictUploadBytes); err != nil {
		log.Err(err).Msg("multipart parse failed")
		utils.WriteJSON(w, predictError{Error: "No image uploaded"}, http.StatusBadRequest)
		return
	}

	image, header, err := r.FormFile("image")
	if err != nil {
		log.Err(err).Msg("no image file in request")
		utils.WriteJSON(w, predictError{Error: "No image uploaded"}, http.StatusBadRequest)
		return
	}
	defer image.Close()

	prediction, err := h.services.PredictService.Predict(ctx, header.Filename, image)
	if err != nil {
		log.Err(err).Msg("prediction failed")
		utils.WriteJSON(w, predictError{Error: "Prediction service failed"}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, prediction, http.StatusOK)
}
