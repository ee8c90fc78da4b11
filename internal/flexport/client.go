// Package flexport talks to the Flexport logistics API: it negotiates upload
// slots for order attachments and pushes file bytes to the granted URL.
package flexport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kurochkinivan/document_uploader/internal/config"
	"github.com/kurochkinivan/document_uploader/internal/domain"
)

const (
	DefaultBaseURL = "https://logistics-api.flexport.com/logistics/api/2025-03"
	DefaultTimeout = time.Minute

	maxResponseBytes = 1 << 20
)

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(cfg config.Flexport) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.BearerToken,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type slotRequestBody struct {
	AttachmentType string `json:"attachmentType"`
	ContentType    string `json:"contentType"`
}

type slotResponseBody struct {
	UploadURL string `json:"uploadUrl"`
}

// RequestSlot asks the API for a presigned upload URL. A non-nil response is
// returned whenever the call completed, whatever its status.
func (c *Client) RequestSlot(ctx context.Context, req domain.SlotRequest) (*domain.SlotResponse, error) {
	payload, err := json.Marshal(slotRequestBody{
		AttachmentType: req.AttachmentType,
		ContentType:    req.ContentType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode slot request: %w", err)
	}

	endpoint := c.baseURL + "/orders/rs/" + url.PathEscape(req.ShipmentID) + "/attachments"

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create slot request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.token)
	httpReq.Header.Set("Content-Type", "application/json; charset=utf-8")
	httpReq.Header.Set("Accept", "application/json")

	status, body, err := c.do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to request upload slot: %w", err)
	}

	resp := &domain.SlotResponse{
		StatusCode: status,
		Body:       body,
	}

	if !resp.Successful() {
		return resp, nil
	}

	var parsed slotResponseBody
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		return resp, fmt.Errorf("%w: %w", domain.ErrMalformedSlotResponse, err)
	}
	resp.UploadURL = strings.TrimSpace(parsed.UploadURL)

	return resp, nil
}

// Transfer streams the file bytes to a presigned URL. The URL carries its own
// authorization, so no bearer token is sent.
func (c *Client) Transfer(ctx context.Context, req domain.TransferRequest) (*domain.TransferResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, req.URL, req.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to create transfer request: %w", err)
	}
	httpReq.Header.Set("Content-Type", req.ContentType)
	httpReq.ContentLength = req.Size
	if req.Size == 0 {
		httpReq.Body = http.NoBody
	}

	status, body, err := c.do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to transfer file: %w", err)
	}

	return &domain.TransferResponse{
		StatusCode: status,
		Body:       body,
	}, nil
}

func (c *Client) do(req *http.Request) (int, string, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return resp.StatusCode, "", fmt.Errorf("failed to read response body: %w", err)
	}

	return resp.StatusCode, string(body), nil
}
