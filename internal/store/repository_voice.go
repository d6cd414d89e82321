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

// voiceTranscriptRepository is the PostgreSQL-backed implementation of
// [VoiceTranscriptRepository]. Mirrors the sign detection repository over
// the "voice_transcripts" table.
type voiceTranscriptRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewVoiceTranscriptRepository constructs a [VoiceTranscriptRepository]
// backed by the provided database connection and logger.
func NewVoiceTranscriptRepository(db *DB, logger *logger.Logger) VoiceTranscriptRepository {
	logger.Debug().Msg("creating voice transcript repository")
	return &voiceTranscriptRepository{
		db:     db,
		logger: logger,
	}
}

func (r *voiceTranscriptRepository) Create(ctx context.Context, transcript models.VoiceTranscript) (models.VoiceTranscript, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Insert("voice_transcripts").
		Columns("user_id", "transcript", "language", "duration_seconds").
		Values(transcript.UserID, transcript.Transcript, transcript.Language, transcript.DurationSeconds).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return models.VoiceTranscript{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&transcript.ID, &transcript.CreatedAt); err != nil {
		log.Err(err).Str("func", "*voiceTranscriptRepository.Create").Msg("error: scanning error")
		return models.VoiceTranscript{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return transcript, nil
}

func (r *voiceTranscriptRepository) ListByUser(ctx context.Context, userID int64, page models.HistoryPage) ([]models.VoiceTranscript, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Select("id", "user_id", "transcript", "language", "duration_seconds", "created_at").
		From("voice_transcripts").
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
		log.Err(err).Str("func", "*voiceTranscriptRepository.ListByUser").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	transcripts := make([]models.VoiceTranscript, 0, page.Limit)
	for rows.Next() {
		var t models.VoiceTranscript
		if err := rows.Scan(&t.ID, &t.UserID, &t.Transcript, &t.Language, &t.DurationSeconds, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		transcripts = append(transcripts, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return transcripts, nil
}

func (r *voiceTranscriptRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	query, args, err := psql.
		Select("COUNT(*)").
		From("voice_transcripts").
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

func (r *voiceTranscriptRepository) FindByIDAndUser(ctx context.Context, id, userID int64) (models.VoiceTranscript, error) {
	query, args, err := psql.
		Select("id", "user_id", "transcript", "language", "duration_seconds", "created_at").
		From("voice_transcripts").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return models.VoiceTranscript{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var t models.VoiceTranscript
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&t.ID, &t.UserID, &t.Transcript, &t.Language, &t.DurationSeconds, &t.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.VoiceTranscript{}, ErrRecordNotFound
		}
		return models.VoiceTranscript{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return t, nil
}

func (r *voiceTranscriptRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.
		Delete("voice_transcripts").
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
