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

// psql is the shared statement builder for PostgreSQL placeholder syntax.
// History queries are built dynamically because the page bounds vary per
// request.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// signDetectionRepository is the PostgreSQL-backed implementation of
// [SignDetectionRepository].
type signDetectionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSignDetectionRepository constructs a [SignDetectionRepository] backed by
// the provided database connection and logger.
func NewSignDetectionRepository(db *DB, logger *logger.Logger) SignDetectionRepository {
	logger.Debug().Msg("creating sign detection repository")
	return &signDetectionRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a detection row and returns it with the server-assigned
// ID and CreatedAt.
func (r *signDetectionRepository) Create(ctx context.Context, detection models.SignDetection) (models.SignDetection, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Insert("sign_detections").
		Columns("user_id", "detected_sign", "confidence", "language").
		Values(detection.UserID, detection.DetectedSign, detection.Confidence, detection.Language).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return models.SignDetection{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&detection.ID, &detection.CreatedAt); err != nil {
		log.Err(err).Str("func", "*signDetectionRepository.Create").Msg("error: scanning error")
		return models.SignDetection{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return detection, nil
}

// ListByUser returns the user's detections newest-first, bounded by the
// given page.
func (r *signDetectionRepository) ListByUser(ctx context.Context, userID int64, page models.HistoryPage) ([]models.SignDetection, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Select("id", "user_id", "detected_sign", "confidence", "language", "created_at").
		From("sign_detections").
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
		log.Err(err).Str("func", "*signDetectionRepository.ListByUser").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	detections := make([]models.SignDetection, 0, page.Limit)
	for rows.Next() {
		var d models.SignDetection
		if err := rows.Scan(&d.ID, &d.UserID, &d.DetectedSign, &d.Confidence, &d.Language, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		detections = append(detections, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return detections, nil
}

// CountByUser returns the total number of detections stored for the user.
func (r *signDetectionRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	query, args, err := psql.
		Select("COUNT(*)").
		From("sign_detections").
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

// FindByIDAndUser retrieves one detection owned by the user.
// Returns [ErrRecordNotFound] when no row matches both conditions, so a user
// can never observe (or delete) another user's history entry.
func (r *signDetectionRepository) FindByIDAndUser(ctx context.Context, id, userID int64) (models.SignDetection, error) {
	query, args, err := psql.
		Select("id", "user_id", "detected_sign", "confidence", "language", "created_at").
		From("sign_detections").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return models.SignDetection{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var d models.SignDetection
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&d.ID, &d.UserID, &d.DetectedSign, &d.Confidence, &d.Language, &d.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SignDetection{}, ErrRecordNotFound
		}
		return models.SignDetection{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return d, nil
}

// Delete removes the detection with the given id.
func (r *signDetectionRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.
		Delete("sign_detections").
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
