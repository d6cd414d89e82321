package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/signbridge/signbridge/internal/logger"
	"github.com/signbridge/signbridge/internal/store"
	"github.com/signbridge/signbridge/models"
)

// preferencesService is the concrete implementation of PreferencesService.
type preferencesService struct {
	preferences store.PreferencesRepository
	logger      *logger.Logger
}

// NewPreferencesService constructs a PreferencesService backed by the
// given repository.
func NewPreferencesService(preferences store.PreferencesRepository, logger *logger.Logger) PreferencesService {
	return &preferencesService{
		preferences: preferences,
		logger:      logger,
	}
}

// Get returns the user's preferences, creating an empty row on first read.
// A user therefore always has preferences; GET never returns 404.
func (p *preferencesService) Get(ctx context.Context, userID int64) (models.Preferences, error) {
	log := logger.FromContext(ctx)

	prefs, err := p.preferences.FindByUser(ctx, userID)
	if err == nil {
		return prefs, nil
	}

	if !errors.Is(err, store.ErrRecordNotFound) {
		log.Err(err).Int64("user_id", userID).Msg("preferences lookup ended with error")
		return models.Preferences{}, fmt.Errorf("preferences lookup ended with error: %w", err)
	}

	created, err := p.preferences.Upsert(ctx, models.Preferences{UserID: userID})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("default preferences creation ended with error")
		return models.Preferences{}, fmt.Errorf("default preferences creation ended with error: %w", err)
	}

	return created, nil
}

// Update overwrites the supplied fields and returns the stored state.
// Fields absent from the request keep their current values.
func (p *preferencesService) Update(ctx context.Context, userID int64, req models.UpdatePreferencesRequest) (models.Preferences, error) {
	log := logger.FromContext(ctx)

	current, err := p.Get(ctx, userID)
	if err != nil {
		return models.Preferences{}, err
	}

	if req.PreferredInputMode != nil {
		current.PreferredInputMode = req.PreferredInputMode
	}
	if req.AccessibilitySettings != nil {
		current.AccessibilitySettings = req.AccessibilitySettings
	}

	updated, err := p.preferences.Upsert(ctx, current)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("preferences update ended with error")
		return models.Preferences{}, fmt.Errorf("preferences update ended with error: %w", err)
	}

	return updated, nil
}
