package service

import (
	"context"
	"fmt"

	"github.com/signbridge/signbridge/internal/logger"
	"github.com/signbridge/signbridge/internal/utils"
	"github.com/signbridge/signbridge/models"
)

// translateService proxies translation requests to the MyMemory API.
// The backend adds no caching or batching; it forwards one phrase per call
// and reshapes the provider's reply into the app's response format.
type translateService struct {
	client  *utils.HTTPClient
	baseURL string
	logger  *logger.Logger
}

// NewTranslateService constructs a TranslateService that calls the
// translation API rooted at baseURL.
func NewTranslateService(client *utils.HTTPClient, baseURL string, logger *logger.Logger) TranslateService {
	return &translateService{
		client:  client,
		baseURL: baseURL,
		logger:  logger,
	}
}

// Translate sends the text to the provider's GET /get endpoint and returns
// the best translation it offers.
//
// SourceLang defaults to "en". Returns ErrInvalidDataProvided when Text or
// TargetLang is empty and ErrTranslationUpstream when the provider is
// unreachable, replies with a non-2xx status, or omits the response data.
func (t *translateService) Translate(ctx context.Context, req models.TranslateRequest) (models.Translation, error) {
	log := logger.FromContext(ctx)

	if req.Text == "" || req.TargetLang == "" {
		return models.Translation{}, ErrInvalidDataProvided
	}

	sourceLang := req.SourceLang
	if sourceLang == "" {
		sourceLang = "en"
	}

	var providerResponse models.MyMemoryResponse

	resp, err := t.client.R().
		SetContext(ctx).
		SetQueryParam("q", req.Text).
		SetQueryParam("langpair", fmt.Sprintf("%s|%s", sourceLang, req.TargetLang)).
		SetResult(&providerResponse).
		Get(t.baseURL + "/get")
	if err != nil {
		log.Err(err).Msg("translation request failed")
		return models.Translation{}, fmt.Errorf("%w: %w", ErrTranslationUpstream, err)
	}

	if resp.IsError() {
		log.Error().Int("status", resp.StatusCode()).Msg("translation provider returned error status")
		return models.Translation{}, fmt.Errorf("%w: status %d", ErrTranslationUpstream, resp.StatusCode())
	}

	if providerResponse.ResponseData == nil {
		log.Error().Msg("translation provider returned no response data")
		return models.Translation{}, fmt.Errorf("%w: empty response data", ErrTranslationUpstream)
	}

	return models.Translation{
		TranslatedText: providerResponse.ResponseData.TranslatedText,
		Match:          providerResponse.ResponseData.Match,
	}, nil
}
