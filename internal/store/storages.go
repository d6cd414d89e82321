package store

import "github.com/signbridge/signbridge/internal/logger"

// Storages bundles every repository behind one injectable value.
type Storages struct {
	UserRepository            UserRepository
	SessionRepository         SessionRepository
	SignDetectionRepository   SignDetectionRepository
	VoiceTranscriptRepository VoiceTranscriptRepository
	TextMessageRepository     TextMessageRepository
	PreferencesRepository     PreferencesRepository
}

// NewStorages wires all repositories to the shared database handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:            NewUserRepository(db, logger),
		SessionRepository:         NewSessionRepository(db, logger),
		SignDetectionRepository:   NewSignDetectionRepository(db, logger),
		VoiceTranscriptRepository: NewVoiceTranscriptRepository(db, logger),
		TextMessageRepository:     NewTextMessageRepository(db, logger),
		PreferencesRepository:     NewPreferencesRepository(db, logger),
	}
}
