package domain

import "time"

// Outcome is the result of one processing attempt, written back to the
// upload record. Empty strings are persisted as NULL.
type Outcome struct {
	FileID            int64
	Kind              FailureKind // empty on success
	PresignedURL      string
	PresignedResponse string
	Successful        bool
	UploadTime        *time.Time // set only when the transfer call completed
	APIMessage        string
}

type UploadAttempt struct {
	ID                 int64      `db:"id"                   json:"id"`
	FileID             int64      `db:"file_id"              json:"file_id"`
	Successful         bool       `db:"successful"           json:"successful"`
	FailureKind        *string    `db:"failure_kind"         json:"failure_kind"`
	PresignedURL       *string    `db:"presigned_url"        json:"presigned_url"`
	APIResponseMessage *string    `db:"api_response_message" json:"api_response_message"`
	UploadTime         *time.Time `db:"upload_time"          json:"upload_time"`
	AttemptedAt        time.Time  `db:"attempted_at"         json:"attempted_at"`
}
