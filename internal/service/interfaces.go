package service

import (
	"context"
	"io"

	"github.com/signbridge/signbridge/models"
)

// AuthService owns the authentication lifecycle: account creation,
// credential verification, token issuance/parsing, and session records.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, userID int64) (models.User, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// SignHistoryService manages the per-user history of recognized signs.
type SignHistoryService interface {
	SaveDetection(ctx context.Context, userID int64, req models.DetectSignRequest) (models.SignDetection, error)
	History(ctx context.Context, userID int64, page models.HistoryPage) ([]models.SignDetection, int64, models.HistoryPage, error)
	DeleteDetection(ctx context.Context, userID, id int64) error
}

// VoiceHistoryService manages the per-user history of voice transcripts.
type VoiceHistoryService interface {
	SaveTranscript(ctx context.Context, userID int64, req models.TranscribeRequest) (models.VoiceTranscript, error)
	History(ctx context.Context, userID int64, page models.HistoryPage) ([]models.VoiceTranscript, int64, models.HistoryPage, error)
	DeleteTranscript(ctx context.Context, userID, id int64) error
}

// TextHistoryService manages the per-user history of typed messages.
type TextHistoryService interface {
	SaveMessage(ctx context.Context, userID int64, req models.SaveMessageRequest) (models.TextMessage, error)
	History(ctx context.Context, userID int64, page models.HistoryPage) ([]models.TextMessage, int64, models.HistoryPage, error)
	DeleteMessage(ctx context.Context, userID, id int64) error
}

// PreferencesService manages per-user UI preferences.
type PreferencesService interface {
	Get(ctx context.Context, userID int64) (models.Preferences, error)
	Update(ctx context.Context, userID int64, req models.UpdatePreferencesRequest) (models.Preferences, error)
}

// TranslateService proxies text translation to the external provider.
type TranslateService interface {
	Translate(ctx context.Context, req models.TranslateRequest) (models.Translation, error)
}

// PredictService proxies single-frame sign prediction to the external
// ML service.
type PredictService interface {
	Predict(ctx context.Context, filename string, image io.Reader) (models.Prediction, error)
}
