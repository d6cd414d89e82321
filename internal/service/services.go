package service

import (
	"github.com/signbridge/signbridge/internal/config"
	"github.com/signbridge/signbridge/internal/logger"
	"github.com/signbridge/signbridge/internal/store"
	"github.com/signbridge/signbridge/internal/utils"
)

// Services bundles every business-logic service behind one injectable value.
type Services struct {
	AuthService         AuthService
	SignHistoryService  SignHistoryService
	VoiceHistoryService VoiceHistoryService
	TextHistoryService  TextHistoryService
	PreferencesService  PreferencesService
	TranslateService    TranslateService
	PredictService      PredictService
}

// NewServices wires all services to their repositories and outbound clients.
// Both external proxies share one HTTP client so they share a connection
// pool and timeout policy.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	httpClient := utils.NewHTTPClient(cfg.External.RequestTimeout.Std())

	return &Services{
		AuthService:         NewAuthService(storages.UserRepository, storages.SessionRepository, cfg.App, logger),
		SignHistoryService:  NewSignHistoryService(storages.SignDetectionRepository, logger),
		VoiceHistoryService: NewVoiceHistoryService(storages.VoiceTranscriptRepository, logger),
		TextHistoryService:  NewTextHistoryService(storages.TextMessageRepository, logger),
		PreferencesService:  NewPreferencesService(storages.PreferencesRepository, logger),
		TranslateService:    NewTranslateService(httpClient, cfg.External.TranslateBaseURL, logger),
		PredictService:      NewPredictService(httpClient, cfg.External.PredictBaseURL, logger),
	}
}
