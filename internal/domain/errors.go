package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound        = errors.New("upload record not found")
	ErrMalformedWorkItem     = errors.New("malformed upload work item")
	ErrMalformedSlotResponse = errors.New("malformed upload slot response")
)

type FailureKind string

const (
	KindNotFound          FailureKind = "not_found"
	KindInvalidRecord     FailureKind = "invalid_record"
	KindNegotiationFailed FailureKind = "negotiation_failed"
	KindTransferFailed    FailureKind = "transfer_failed"
	KindTransientFault    FailureKind = "transient_fault"
)

// UploadError describes why a single upload attempt failed. Message is the
// text persisted as the record's api response message.
type UploadError struct {
	Kind       FailureKind
	FileID     int64
	StatusCode int
	Message    string
	Err        error
}

func (e *UploadError) Error() string {
	msg := fmt.Sprintf("file %d: %s", e.FileID, e.Kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}

	if e.Message != "" {
		msg += ": " + e.Message
	}

	if e.Err != nil && e.Err.Error() != e.Message {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

func NewTransientFault(fileID int64, err error) *UploadError {
	return &UploadError{
		Kind:    KindTransientFault,
		FileID:  fileID,
		Message: err.Error(),
		Err:     err,
	}
}

// KindOf returns the failure kind carried by err, or an empty kind when err
// is nil or not an UploadError.
func KindOf(err error) FailureKind {
	var uerr *UploadError
	if errors.As(err, &uerr) {
		return uerr.Kind
	}

	return ""
}

func IsTransient(err error) bool {
	return KindOf(err) == KindTransientFault
}
