package store

import (
	"context"

	"github.com/signbridge/signbridge/models"
)

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// SessionRepository persists issued bearer tokens. Sessions are audit
// records: the auth middleware validates tokens cryptographically and does
// not consult this repository on every request.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) (models.Session, error)
	// DeleteSessionsByToken removes every session row matching the token.
	// Deleting a token that has no rows is a no-op, not an error.
	DeleteSessionsByToken(ctx context.Context, token string) error
}

// SignDetectionRepository persists the per-user sign recognition history.
type SignDetectionRepository interface {
	Create(ctx context.Context, detection models.SignDetection) (models.SignDetection, error)
	ListByUser(ctx context.Context, userID int64, page models.HistoryPage) ([]models.SignDetection, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
	FindByIDAndUser(ctx context.Context, id, userID int64) (models.SignDetection, error)
	Delete(ctx context.Context, id int64) error
}

// VoiceTranscriptRepository persists the per-user voice transcript history.
type VoiceTranscriptRepository interface {
	Create(ctx context.Context, transcript models.VoiceTranscript) (models.VoiceTranscript, error)
	ListByUser(ctx context.Context, userID int64, page models.HistoryPage) ([]models.VoiceTranscript, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
	FindByIDAndUser(ctx context.Context, id, userID int64) (models.VoiceTranscript, error)
	Delete(ctx context.Context, id int64) error
}

// TextMessageRepository persists the per-user typed message history.
type TextMessageRepository interface {
	Create(ctx context.Context, message models.TextMessage) (models.TextMessage, error)
	ListByUser(ctx context.Context, userID int64, page models.HistoryPage) ([]models.TextMessage, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
	FindByIDAndUser(ctx context.Context, id, userID int64) (models.TextMessage, error)
	Delete(ctx context.Context, id int64) error
}

// PreferencesRepository persists per-user UI preferences.
type PreferencesRepository interface {
	FindByUser(ctx context.Context, userID int64) (models.Preferences, error)
	Upsert(ctx context.Context, preferences models.Preferences) (models.Preferences, error)
}
