package domain

import (
	"io"
	"net/http"
)

type SlotRequest struct {
	ShipmentID     string
	AttachmentType string
	ContentType    string
}

type SlotResponse struct {
	StatusCode int
	Body       string
	UploadURL  string // filled only for a 2xx response with a parseable body
}

func (r *SlotResponse) Successful() bool {
	return isSuccessStatus(r.StatusCode)
}

type TransferRequest struct {
	URL         string
	ContentType string
	Body        io.Reader
	Size        int64
}

type TransferResponse struct {
	StatusCode int
	Body       string
}

func (r *TransferResponse) Successful() bool {
	return isSuccessStatus(r.StatusCode)
}

func isSuccessStatus(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}
