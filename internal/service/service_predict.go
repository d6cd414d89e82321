package service

import (
	"context"
	"fmt"
	"io"

	"github.com/signbridge/signbridge/internal/logger"
	"github.com/signbridge/signbridge/internal/utils"
	"github.com/signbridge/signbridge/models"
)

// predictService proxies single-frame sign recognition to the external ML
// service. The frame passes through untouched; model inference and label
// mapping live entirely on the other side.
type predictService struct {
	client  *utils.HTTPClient
	baseURL string
	logger  *logger.Logger
}

// NewPredictService constructs a PredictService that calls the ML service
// rooted at baseURL.
func NewPredictService(client *utils.HTTPClient, baseURL string, logger *logger.Logger) PredictService {
	return &predictService{
		client:  client,
		baseURL: baseURL,
		logger:  logger,
	}
}

// Predict forwards the image to the ML service's POST /predict endpoint as
// a multipart upload under the "image" field and returns the predicted
// label with its confidence.
//
// Returns ErrInvalidDataProvided when no image is supplied and
// ErrPredictionUpstream when the ML service is unreachable or replies with
// a non-2xx status.
func (p *predictService) Predict(ctx context.Context, filename string, image io.Reader) (models.Prediction, error) {
	log := logger.FromContext(ctx)

	if image == nil {
		return models.Prediction{}, ErrInvalidDataProvided
	}

	var prediction models.Prediction

	resp, err := p.client.R().
		SetContext(ctx).
		SetFileReader("image", filename, image).
		SetResult(&prediction).
		Post(p.baseURL + "/predict")
	if err != nil {
		log.Err(err).Msg("prediction request failed")
		return models.Prediction{}, fmt.Errorf("%w: %w", ErrPredictionUpstream, err)
	}

	if resp.IsError() {
		log.Error().Int("status", resp.StatusCode()).Msg("prediction service returned error status")
		return models.Prediction{}, fmt.Errorf("%w: status %d", ErrPredictionUpstream, resp.StatusCode())
	}

	return prediction, nil
}
