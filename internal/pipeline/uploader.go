package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/kurochkinivan/document_uploader/internal/domain"
	"golang.org/x/sync/singleflight"
)

const (
	msgSlotRequestFailed = "failed to get presigned URL"
	msgUploadURLMissing  = "uploadUrl missing in response"

	resultSuccess = "success"
	resultError   = "error"
)

type RetryPolicy struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// Uploader resolves a file id to its upload record, negotiates an upload slot,
// transfers the bytes and records the outcome. Every attempt starts from the
// record load, so re-running a failed file is always safe.
type Uploader struct {
	log        *slog.Logger
	records    RecordProvider
	outcomes   OutcomeSaver
	attempts   AttemptRecorder
	transactor Transactor
	client     UploadClient
	observer   UploadObserver
	retry      RetryPolicy
	inflight   singleflight.Group
	callers    atomic.Int64
}

func NewUploader(
	log *slog.Logger,
	records RecordProvider,
	outcomes OutcomeSaver,
	attempts AttemptRecorder,
	transactor Transactor,
	client UploadClient,
	observer UploadObserver,
	retry RetryPolicy,
) *Uploader {
	return &Uploader{
		log:        log,
		records:    records,
		outcomes:   outcomes,
		attempts:   attempts,
		transactor: transactor,
		client:     client,
		observer:   observer,
		retry:      retry,
	}
}

// Process uploads the file and reports whether it succeeded. Transient faults
// are retried according to the retry policy; every other failure is final.
// Concurrent calls for the same file id share a single run.
func (u *Uploader) Process(ctx context.Context, fileID int64) bool {
	log := u.log.With(slog.Int64("file_id", fileID))

	// DoChan attaches the caller to the group before it returns.
	results := u.inflight.DoChan(strconv.FormatInt(fileID, 10), func() (_ any, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("upload panicked: %v", r)
			}
		}()

		return nil, u.uploadWithRetry(ctx, log, fileID)
	})

	u.callers.Add(1)
	res := <-results
	u.callers.Add(-1)

	err, shared := res.Err, res.Shared

	if shared {
		log.WarnContext(ctx, "duplicate delivery joined an in-flight upload")
	}

	if err != nil {
		log.ErrorContext(ctx, "upload failed",
			slog.String("kind", string(domain.KindOf(err))),
			slog.String("err", err.Error()),
		)

		return false
	}

	log.InfoContext(ctx, "upload succeeded")

	return true
}

func (u *Uploader) uploadWithRetry(ctx context.Context, log *slog.Logger, fileID int64) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = u.retry.InitialInterval
	b.MaxInterval = u.retry.MaxInterval
	b.MaxElapsedTime = 0

	policy := backoff.WithContext(backoff.WithMaxRetries(b, u.retry.MaxRetries), ctx)

	return backoff.RetryNotify(
		func() error {
			err := u.Upload(ctx, fileID)
			if err != nil && !domain.IsTransient(err) {
				return backoff.Permanent(err)
			}

			return err
		},
		policy,
		func(err error, wait time.Duration) {
			log.WarnContext(ctx, "transient upload fault, retrying",
				slog.Duration("wait", wait),
				slog.String("err", err.Error()),
			)
		},
	)
}

// Upload runs a single attempt and returns nil or a *domain.UploadError.
func (u *Uploader) Upload(ctx context.Context, fileID int64) error {
	started := time.Now()

	err := u.upload(ctx, fileID)

	result := resultSuccess
	if err != nil {
		result = string(domain.KindOf(err))
		if result == "" {
			result = resultError
		}
	}

	u.observer.ObserveUpload(result, time.Since(started))

	return err
}

// attempt holds what an attempt has learned so far; a failure at any step
// persists it as the outcome.
type attempt struct {
	fileID       int64
	presignedURL string
	slotResponse string
}

func (a *attempt) outcome(successful bool, message string) *domain.Outcome {
	return &domain.Outcome{
		FileID:            a.fileID,
		PresignedURL:      a.presignedURL,
		PresignedResponse: a.slotResponse,
		Successful:        successful,
		APIMessage:        message,
	}
}

func (u *Uploader) upload(ctx context.Context, fileID int64) error {
	a := &attempt{fileID: fileID}

	record, err := u.records.UploadByFileID(ctx, fileID)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return &domain.UploadError{
			Kind:    domain.KindNotFound,
			FileID:  fileID,
			Message: "no upload record for file id",
			Err:     err,
		}
	}

	if err != nil {
		return u.fail(ctx, a, domain.NewTransientFault(fileID, fmt.Errorf("failed to load upload record: %w", err)))
	}

	if err := record.Validate(); err != nil {
		return u.fail(ctx, a, &domain.UploadError{
			Kind:    domain.KindInvalidRecord,
			FileID:  fileID,
			Message: "invalid upload record: " + err.Error(),
			Err:     err,
		})
	}

	if uerr := u.negotiate(ctx, record, a); uerr != nil {
		return u.fail(ctx, a, uerr)
	}

	return u.transfer(ctx, record, a)
}

func (u *Uploader) negotiate(ctx context.Context, record *domain.UploadRecord, a *attempt) *domain.UploadError {
	slot, err := u.client.RequestSlot(ctx, domain.SlotRequest{
		ShipmentID:     record.ShipmentID,
		AttachmentType: record.FileType,
		ContentType:    record.ContentType(),
	})

	var status int
	if slot != nil {
		a.slotResponse = slot.Body
		status = slot.StatusCode
	}

	switch {
	case errors.Is(err, domain.ErrMalformedSlotResponse):
		return &domain.UploadError{
			Kind:       domain.KindNegotiationFailed,
			FileID:     record.FileID,
			StatusCode: status,
			Message:    msgUploadURLMissing,
			Err:        err,
		}

	case err != nil:
		return domain.NewTransientFault(record.FileID, err)

	case !slot.Successful():
		return &domain.UploadError{
			Kind:       domain.KindNegotiationFailed,
			FileID:     record.FileID,
			StatusCode: status,
			Message:    fmt.Sprintf("%s: status %d: %s", msgSlotRequestFailed, status, slot.Body),
		}

	case slot.UploadURL == "":
		return &domain.UploadError{
			Kind:       domain.KindNegotiationFailed,
			FileID:     record.FileID,
			StatusCode: status,
			Message:    msgUploadURLMissing,
		}
	}

	a.presignedURL = slot.UploadURL

	return nil
}

func (u *Uploader) transfer(ctx context.Context, record *domain.UploadRecord, a *attempt) error {
	f, err := os.Open(record.FilePath)
	if err != nil {
		return u.fail(ctx, a, domain.NewTransientFault(record.FileID, fmt.Errorf("failed to open source file: %w", err)))
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return u.fail(ctx, a, domain.NewTransientFault(record.FileID, fmt.Errorf("failed to stat source file: %w", err)))
	}

	resp, err := u.client.Transfer(ctx, domain.TransferRequest{
		URL:         a.presignedURL,
		ContentType: record.ContentType(),
		Body:        f,
		Size:        info.Size(),
	})
	if err != nil {
		return u.fail(ctx, a, domain.NewTransientFault(record.FileID, err))
	}

	uploadTime := time.Now().UTC()

	outcome := a.outcome(resp.Successful(), resp.Body)
	outcome.UploadTime = &uploadTime

	var uerr *domain.UploadError
	if !resp.Successful() {
		uerr = &domain.UploadError{
			Kind:       domain.KindTransferFailed,
			FileID:     record.FileID,
			StatusCode: resp.StatusCode,
			Message:    resp.Body,
		}
		outcome.Kind = uerr.Kind
	}

	if err := u.saveOutcome(ctx, outcome); err != nil {
		return domain.NewTransientFault(record.FileID, err)
	}

	if uerr != nil {
		return uerr
	}

	return nil
}

// fail records the failed attempt and returns uerr. When the outcome itself
// cannot be written the failure becomes a transient fault.
func (u *Uploader) fail(ctx context.Context, a *attempt, uerr *domain.UploadError) error {
	outcome := a.outcome(false, uerr.Message)
	outcome.Kind = uerr.Kind

	if err := u.saveOutcome(ctx, outcome); err != nil {
		return domain.NewTransientFault(a.fileID, errors.Join(uerr, err))
	}

	return uerr
}

func (u *Uploader) saveOutcome(ctx context.Context, outcome *domain.Outcome) error {
	return u.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		if err := u.outcomes.SaveOutcome(ctx, outcome); err != nil {
			return fmt.Errorf("failed to save outcome: %w", err)
		}

		if err := u.attempts.SaveAttempt(ctx, outcome); err != nil {
			return fmt.Errorf("failed to save attempt: %w", err)
		}

		return nil
	})
}
