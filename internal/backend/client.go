package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"ragtui/internal/media"
)

// Query transport policy: up to 3 attempts against transient server
// errors, exponential backoff starting at one second, and a fixed
// overall deadline that bounds the whole call including retries.
const (
	maxQueryAttempts = 3
	backoffBase      = time.Second
	queryTimeout     = 180 * time.Second
)

// Client talks to the answering backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	backoff    time.Duration
}

// ClientOption configures the client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *zap.Logger) ClientOption {
	return func(client *Client) {
		client.logger = l
	}
}

// WithBackoffBase overrides the initial retry delay. Tests use this to
// avoid real sleeps.
func WithBackoffBase(d time.Duration) ClientOption {
	return func(client *Client) {
		client.backoff = d
	}
}

// NewClient creates a backend client. The default HTTP client carries
// no timeout of its own: uploads are unbounded by design and queries
// are bounded per call.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     zap.NewNop(),
		backoff:    backoffBase,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// UploadPDF sends the staged PDF file to POST /upload/pdf/ and returns
// the extracted document content.
func (c *Client) UploadPDF(ctx context.Context, path string) (*PDFUploadResult, error) {
	body, err := c.uploadFile(ctx, "/upload/pdf/", path)
	if err != nil {
		return nil, err
	}
	if !gjson.GetBytes(body, "file_id").Exists() {
		return nil, &MalformedResponseError{Field: "file_id"}
	}
	var result PDFUploadResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode pdf upload response: %w", err)
	}
	return &result, nil
}

// UploadVideo sends the staged video file to POST /upload/video/ and
// returns the transcript content.
func (c *Client) UploadVideo(ctx context.Context, path string) (*VideoUploadResult, error) {
	body, err := c.uploadFile(ctx, "/upload/video/", path)
	if err != nil {
		return nil, err
	}
	if !gjson.GetBytes(body, "file_id").Exists() {
		return nil, &MalformedResponseError{Field: "file_id"}
	}
	var result VideoUploadResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode video upload response: %w", err)
	}
	if err := media.ValidateChunks(result.TranscriptChunks); err != nil {
		return nil, fmt.Errorf("transcript data: %w", err)
	}
	return &result, nil
}

// uploadFile performs one multipart POST of the file at path. A
// non-200 status becomes an *APIError carrying the backend detail.
func (c *Client) uploadFile(ctx context.Context, endpoint, path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open upload file: %w", err)
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("create multipart field: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("read upload file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	requestID := uuid.NewString()
	c.logger.Info("uploading file",
		zap.String("request_id", requestID),
		zap.String("endpoint", endpoint),
		zap.String("file", filepath.Base(path)),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.logger.Info("upload response",
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
	)

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Detail: detailMessage(body)}
	}
	return body, nil
}

// Query sends a question to POST /query/. Transient server errors and
// transport failures are retried with exponential backoff; client
// errors surface immediately. A 200 response without an answer field
// is ErrNoAnswer.
func (c *Client) Query(ctx context.Context, req *QueryRequest) (*QueryResult, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	requestID := uuid.NewString()

	var lastErr error
	for attempt := 1; attempt <= maxQueryAttempts; attempt++ {
		result, err := c.postQuery(ctx, req, requestID, attempt)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !retryable(err) || attempt == maxQueryAttempts {
			return nil, err
		}

		delay := c.backoff << (attempt - 1)
		c.logger.Warn("query attempt failed, backing off",
			zap.String("request_id", requestID),
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay),
			zap.Error(err),
		)
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("query timed out: %w", lastErr)
		case <-time.After(delay):
		}
	}
	return nil, lastErr
}

func (c *Client) postQuery(ctx context.Context, req *QueryRequest, requestID string, attempt int) (*QueryResult, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal query: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/query/", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	c.logger.Info("query attempt",
		zap.String("request_id", requestID),
		zap.Int("attempt", attempt),
		zap.Bool("scoped", req.Context != ""),
	)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Detail: detailMessage(body)}
	}

	answer := gjson.GetBytes(body, "answer")
	if !answer.Exists() {
		return nil, ErrNoAnswer
	}

	result := &QueryResult{Answer: answer.String()}
	if sources := gjson.GetBytes(body, "sources"); sources.IsArray() {
		if err := json.Unmarshal([]byte(sources.Raw), &result.Sources); err != nil {
			// Citations are an inert extra; a bad shape never fails the answer.
			result.Sources = nil
		}
	}
	return result, nil
}

// retryable reports whether an attempt error warrants another try:
// transient server statuses and transport failures do, anything
// carrying a definite non-transient status does not.
func retryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.IsRetryable()
	}
	if errors.Is(err, ErrNoAnswer) {
		return false
	}
	var malformed *MalformedResponseError
	if errors.As(err, &malformed) {
		return false
	}
	// Network-level failure: retry until attempts are exhausted.
	return true
}

// detailMessage extracts the backend's detail field from an error
// body, falling back to a generic message when absent.
func detailMessage(body []byte) string {
	if detail := gjson.GetBytes(body, "detail"); detail.Exists() {
		return detail.String()
	}
	return "Unknown error"
}
