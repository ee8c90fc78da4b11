package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/kurochkinivan/document_uploader/internal/domain"
)

const TableUploads = "upload_log"

var uploadColumns = []string{
	"id",
	"file_path",
	"shipment_id",
	"file_type",
	"file_content_type",
	"presigned_url",
	"presigned_url_api_response_message",
	"upload_attempted",
	"upload_successful",
	"upload_time",
	"api_response_message",
	"modified_on",
}

type UploadsRepository struct {
	pool Pool
	qb   sq.StatementBuilderType
}

func NewUploadsRepository(pool Pool) *UploadsRepository {
	return &UploadsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *UploadsRepository) UploadByFileID(ctx context.Context, fileID int64) (*domain.UploadRecord, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(uploadColumns...).
		From(TableUploads).
		Where(sq.Eq{"id": fileID}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	record, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.UploadRecord])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return record, nil
}

// SaveOutcome updates only the outcome columns of the record. Path, shipment
// and type columns are never touched.
func (r *UploadsRepository) SaveOutcome(ctx context.Context, outcome *domain.Outcome) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableUploads).
		Set("presigned_url", nullString(outcome.PresignedURL)).
		Set("presigned_url_api_response_message", nullString(outcome.PresignedResponse)).
		Set("upload_attempted", true).
		Set("upload_successful", outcome.Successful).
		Set("upload_time", outcome.UploadTime).
		Set("api_response_message", nullString(outcome.APIMessage)).
		Set("modified_on", sq.Expr("now()")).
		Where(sq.Eq{"id": outcome.FileID}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (r *UploadsRepository) FailedUploads(
	ctx context.Context,
	limit, offset uint64,
) ([]*domain.UploadRecord, int, error) {
	db := extractDB(ctx, r.pool)

	failed := sq.Eq{"upload_attempted": true, "upload_successful": false}

	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(TableUploads).
		Where(failed).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(err)
	}

	sql, args, err = r.qb.
		Select(uploadColumns...).
		From(TableUploads).
		Where(failed).
		OrderBy("modified_on DESC", "id ASC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, -1, executeQueryError(err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.UploadRecord])
	if err != nil {
		return nil, -1, collectRowsError(err)
	}

	return records, total, nil
}
