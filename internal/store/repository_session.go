package store

import (
	"context"
	"fmt"

	"github.com/signbridge/signbridge/internal/logger"
	"github.com/signbridge/signbridge/models"
)

// sessionRepository is the PostgreSQL-backed implementation of
// [SessionRepository]. One row per issued token; a user may own any number
// of rows at once.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession inserts a new session row and returns it with the
// server-assigned ID and CreatedAt. There is no uniqueness constraint on
// user_id: concurrent sessions per user are expected and unbounded.
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) (models.Session, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createSession, session.UserID, session.Token, session.ExpiresAt)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error: row is nil")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&session.ID, &session.UserID, &session.Token, &session.ExpiresAt, &session.CreatedAt); err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error: scanning error")
		return models.Session{}, err
	}

	return session, nil
}

// DeleteSessionsByToken removes every session row carrying the given token.
// The operation is idempotent: zero affected rows is a successful outcome,
// so logging out twice with the same token reports success both times.
func (r *sessionRepository) DeleteSessionsByToken(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteSessionsByToken, token); err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSessionsByToken").Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
