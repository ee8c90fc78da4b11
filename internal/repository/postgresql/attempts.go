package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/kurochkinivan/document_uploader/internal/domain"
)

const TableAttempts = "upload_attempts"

type AttemptsRepository struct {
	pool Pool
	qb   sq.StatementBuilderType
}

func NewAttemptsRepository(pool Pool) *AttemptsRepository {
	return &AttemptsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *AttemptsRepository) SaveAttempt(ctx context.Context, outcome *domain.Outcome) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableAttempts).
		Columns(
			"file_id",
			"successful",
			"failure_kind",
			"presigned_url",
			"api_response_message",
			"upload_time",
		).
		Values(
			outcome.FileID,
			outcome.Successful,
			nullString(string(outcome.Kind)),
			nullString(outcome.PresignedURL),
			nullString(outcome.APIMessage),
			outcome.UploadTime,
		).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}

func (r *AttemptsRepository) AttemptsByFileID(ctx context.Context, fileID int64) ([]*domain.UploadAttempt, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(
			"id",
			"file_id",
			"successful",
			"failure_kind",
			"presigned_url",
			"api_response_message",
			"upload_time",
			"attempted_at",
		).
		From(TableAttempts).
		Where(sq.Eq{"file_id": fileID}).
		OrderBy("attempted_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	attempts, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.UploadAttempt])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return attempts, nil
}
