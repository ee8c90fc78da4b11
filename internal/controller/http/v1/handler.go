package v1

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/document_uploader/internal/domain"
)

type UploadsRepository interface {
	UploadByFileID(ctx context.Context, fileID int64) (*domain.UploadRecord, error)
	FailedUploads(ctx context.Context, limit, offset uint64) ([]*domain.UploadRecord, int, error)
}

type AttemptsRepository interface {
	AttemptsByFileID(ctx context.Context, fileID int64) ([]*domain.UploadAttempt, error)
}

type Requeuer interface {
	PublishUpload(ctx context.Context, fileID int64) error
}

type UploadsHandler struct {
	uploadsRepository  UploadsRepository
	attemptsRepository AttemptsRepository
	requeuer           Requeuer
}

func NewUploadsHandler(
	uploadsRepository UploadsRepository,
	attemptsRepository AttemptsRepository,
	requeuer Requeuer,
) *UploadsHandler {
	return &UploadsHandler{
		uploadsRepository:  uploadsRepository,
		attemptsRepository: attemptsRepository,
		requeuer:           requeuer,
	}
}

type GetFailedUploadsResponse struct {
	Uploads    []*domain.UploadRecord `json:"uploads"`
	Pagination Pagination             `json:"pagination"`
}

type GetAttemptsResponse struct {
	FileID   int64                   `json:"file_id"`
	Attempts []*domain.UploadAttempt `json:"attempts"`
}

type RetryUploadResponse struct {
	FileID int64  `json:"file_id"`
	Status string `json:"status"`
}

func (h *UploadsHandler) GetUpload(w http.ResponseWriter, r *http.Request) {
	fileID, err := parseFileID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	record, err := h.uploadsRepository.UploadByFileID(r.Context(), fileID)
	if errors.Is(err, domain.ErrRecordNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

func (h *UploadsHandler) GetAttempts(w http.ResponseWriter, r *http.Request) {
	fileID, err := parseFileID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	attempts, err := h.attemptsRepository.AttemptsByFileID(r.Context(), fileID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if attempts == nil {
		attempts = []*domain.UploadAttempt{}
	}

	writeJSON(w, http.StatusOK, GetAttemptsResponse{
		FileID:   fileID,
		Attempts: attempts,
	})
}

// GetFailedUploads lists attempted but unsuccessful uploads. With format=csv
// the current page is exported as CSV with a header row.
func (h *UploadsHandler) GetFailedUploads(w http.ResponseWriter, r *http.Request) {
	page, limit, err := h.parsePagination(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	format := r.URL.Query().Get("format")
	if format != "" && format != "json" && format != "csv" {
		http.Error(w, "invalid format, must be json or csv", http.StatusBadRequest)
		return
	}

	offset := (page - 1) * limit

	uploads, total, err := h.uploadsRepository.FailedUploads(r.Context(), limit, offset)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if uploads == nil {
		uploads = []*domain.UploadRecord{}
	}

	if format == "csv" {
		data, err := csvutil.Marshal(uploads)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="failed_uploads.csv"`)
		w.Write(data)
		return
	}

	writeJSON(w, http.StatusOK, GetFailedUploadsResponse{
		Uploads:    uploads,
		Pagination: newPagination(page, limit, total),
	})
}

// RetryUpload puts the file back on the work queue. The record must exist.
func (h *UploadsHandler) RetryUpload(w http.ResponseWriter, r *http.Request) {
	fileID, err := parseFileID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	_, err = h.uploadsRepository.UploadByFileID(r.Context(), fileID)
	if errors.Is(err, domain.ErrRecordNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := h.requeuer.PublishUpload(r.Context(), fileID); err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusAccepted, RetryUploadResponse{
		FileID: fileID,
		Status: "queued",
	})
}

func Healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

func parseFileID(r *http.Request) (int64, error) {
	fileID, err := strconv.ParseInt(chi.URLParam(r, "file_id"), 10, 64)
	if err != nil || fileID <= 0 {
		return 0, errors.New("invalid file_id")
	}

	return fileID, nil
}

func (h *UploadsHandler) parsePagination(r *http.Request) (page uint64, limit uint64, err error) {
	page, limit = 1, 10

	if p := r.URL.Query().Get("page"); p != "" {
		page, err = strconv.ParseUint(p, 10, 64)
		if err != nil || page == 0 {
			return 0, 0, errors.New("invalid page")
		}
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		limit, err = strconv.ParseUint(l, 10, 64)
		if err != nil || limit < 1 || limit > 100 {
			return 0, 0, errors.New("invalid limit, must be in [1;100]")
		}
	}

	return page, limit, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}
