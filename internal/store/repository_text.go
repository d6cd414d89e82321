package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/signbridge/signbridge/internal/logger"
	"github.com/signbridge/signbridge/models"
)

// textMessageRepository is the PostgreSQL-backed implementation of
// [TextMessageRepository] over the "text_messages" table.
type textMessageRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTextMessageRepository constructs a [TextMessageRepository] backed by
// the provided database connection and logger.
func NewTextMessageRepository(db *DB, logger *logger.Logger) TextMessageRepository {
	logger.Debug().Msg("creating text message repository")
	return &textMessageRepository{
		db:     db,
		logger: logger,
	}
}

func (r *textMessageRepository) Create(ctx context.Context, message models.TextMessage) (models.TextMessage, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Insert("text_messages").
		Columns("user_id", "message_text", "language").
		Values(message.UserID, message.MessageText, message.Language).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return models.TextMessage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&message.ID, &message.CreatedAt); err != nil {
		log.Err(err).Str("func", "*textMessageRepository.Create").Msg("error: scanning error")
		return models.TextMessage{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return message, nil
}

func (r *textMessageRepository) ListByUser(ctx context.Context, userID int64, page models.HistoryPage) ([]models.TextMessage, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Select("id", "user_id", "message_text", "language", "created_at").
		From("text_messages").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*textMessageRepository.ListByUser").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	messages := make([]models.TextMessage, 0, page.Limit)
	for rows.Next() {
		var m models.TextMessage
		if err := rows.Scan(&m.ID, &m.UserID, &m.MessageText, &m.Language, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return messages, nil
}

func (r *textMessageRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	query, args, err := psql.
		Select("COUNT(*)").
		From("text_messages").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return total, nil
}

func (r *textMessageRepository) FindByIDAndUser(ctx context.Context, id, userID int64) (models.TextMessage, error) {
	query, args, err := psql.
		Select("id", "user_id", "message_text", "language", "created_at").
		From("text_messages").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return models.TextMessage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var m models.TextMessage
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&m.ID, &m.UserID, &m.MessageText, &m.Language, &m.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TextMessage{}, ErrRecordNotFound
		}
		return models.TextMessage{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return m, nil
}

func (r *textMessageRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.
		Delete("text_messages").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
