package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/signbridge/signbridge/internal/logger"
	"github.com/signbridge/signbridge/models"
)

// preferencesRepository is the PostgreSQL-backed implementation of
// [PreferencesRepository]. One row per user, created lazily.
type preferencesRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPreferencesRepository constructs a [PreferencesRepository] backed by
// the provided database connection and logger.
func NewPreferencesRepository(db *DB, logger *logger.Logger) PreferencesRepository {
	logger.Debug().Msg("creating preferences repository")
	return &preferencesRepository{
		db:     db,
		logger: logger,
	}
}

// FindByUser retrieves the preferences row for the user.
// Returns [ErrRecordNotFound] when the user has no stored preferences yet.
func (r *preferencesRepository) FindByUser(ctx context.Context, userID int64) (models.Preferences, error) {
	log := logger.FromContext(ctx)

	var prefs models.Preferences
	row := r.db.QueryRowContext(ctx, findPreferencesByUser, userID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*preferencesRepository.FindByUser").Msg("error: row is nil")
		return models.Preferences{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&prefs.ID, &prefs.UserID, &prefs.PreferredInputMode, &prefs.AccessibilitySettings, &prefs.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Preferences{}, ErrRecordNotFound
		}

		log.Err(err).Str("func", "*preferencesRepository.FindByUser").Msg("error: scanning error")
		return models.Preferences{}, err
	}

	return prefs, nil
}

// Upsert inserts the preferences row or overwrites the existing one for the
// same user, returning the canonical stored state.
func (r *preferencesRepository) Upsert(ctx context.Context, preferences models.Preferences) (models.Preferences, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, upsertPreferences, preferences.UserID, preferences.PreferredInputMode, preferences.AccessibilitySettings)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*preferencesRepository.Upsert").Msg("error: row is nil")
		return models.Preferences{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&preferences.ID, &preferences.UserID, &preferences.PreferredInputMode, &preferences.AccessibilitySettings, &preferences.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*preferencesRepository.Upsert").Msg("error: scanning error")
		return models.Preferences{}, err
	}

	return preferences, nil
}
