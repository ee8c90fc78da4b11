package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const DefaultContentType = "application/pdf"

type UploadWorkItem struct {
	FileID int64 `json:"FileID"`
}

// DecodeWorkItem parses a queue payload. Anything that is not a JSON object
// with a positive FileID is reported as ErrMalformedWorkItem.
func DecodeWorkItem(body []byte) (*UploadWorkItem, error) {
	var item UploadWorkItem
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedWorkItem, err)
	}

	if item.FileID <= 0 {
		return nil, fmt.Errorf("%w: FileID must be positive, got %d", ErrMalformedWorkItem, item.FileID)
	}

	return &item, nil
}

type UploadRecord struct {
	FileID                         int64      `csv:"file_id"                           db:"id"                                 json:"file_id"`
	FilePath                       string     `csv:"file_path"                         db:"file_path"                          json:"file_path"`
	ShipmentID                     string     `csv:"shipment_id"                       db:"shipment_id"                        json:"shipment_id"`
	FileType                       string     `csv:"file_type"                         db:"file_type"                          json:"file_type"`
	FileContentType                *string    `csv:"file_content_type"                 db:"file_content_type"                  json:"file_content_type"`
	PresignedURL                   *string    `csv:"presigned_url"                     db:"presigned_url"                      json:"presigned_url"`
	PresignedURLAPIResponseMessage *string    `csv:"presigned_url_api_response_message" db:"presigned_url_api_response_message" json:"presigned_url_api_response_message"`
	UploadAttempted                bool       `csv:"upload_attempted"                  db:"upload_attempted"                   json:"upload_attempted"`
	UploadSuccessful               bool       `csv:"upload_successful"                 db:"upload_successful"                  json:"upload_successful"`
	UploadTime                     *time.Time `csv:"upload_time"                       db:"upload_time"                        json:"upload_time"`
	APIResponseMessage             *string    `csv:"api_response_message"              db:"api_response_message"               json:"api_response_message"`
	ModifiedOn                     *time.Time `csv:"modified_on"                       db:"modified_on"                        json:"modified_on"`
}

func (r *UploadRecord) Validate() error {
	if strings.TrimSpace(r.FilePath) == "" {
		return fmt.Errorf("file_path is required")
	}

	if strings.TrimSpace(r.ShipmentID) == "" {
		return fmt.Errorf("shipment_id is required")
	}

	if strings.TrimSpace(r.FileType) == "" {
		return fmt.Errorf("file_type is required")
	}

	return nil
}

// ContentType returns the MIME type negotiated with the remote API.
func (r *UploadRecord) ContentType() string {
	if r.FileContentType == nil || strings.TrimSpace(*r.FileContentType) == "" {
		return DefaultContentType
	}

	return *r.FileContentType
}
