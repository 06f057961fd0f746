// Package backend provides the HTTP client for the translation backend.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is used when no backend URL is configured.
	DefaultBaseURL = "http://localhost:8000"
	// DefaultTimeout bounds a single translate request.
	DefaultTimeout = 30 * time.Second

	translatePath   = "/translate"
	requestIDHeader = "X-Request-ID"
)

// ErrTransport marks failures below the application protocol: the request
// never completed, or the response body could not be understood.
var ErrTransport = errors.New("translate transport failure")

// ErrEmptyResponse is returned when the backend answers with neither a
// translation nor an error.
var ErrEmptyResponse = errors.New("backend returned no translation")

// APIError is an application-level failure reported by the backend in the
// response body.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return "backend error: " + e.Message
}

// Request is a single translation request.
type Request struct {
	ID         string
	Text       string
	SourceLang string
	TargetLang string
}

type translateRequest struct {
	Text    string `json:"text"`
	SrcLang string `json:"src_lang"`
	TgtLang string `json:"tgt_lang"`
}

type translateResponse struct {
	TranslatedText string `json:"translated_text"`
	Error          string `json:"error"`
}

// Client talks to the translation backend.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for baseURL. An empty baseURL selects
// DefaultBaseURL; a non-positive timeout selects DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the backend base URL in use.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Translate sends req to the backend and returns the translated text.
//
// A response carrying a translated text wins over one carrying an error.
// A response with an error field yields *APIError, and one with neither
// yields ErrEmptyResponse. Network errors and unparseable bodies wrap
// ErrTransport.
func (c *Client) Translate(ctx context.Context, req Request) (string, error) {
	body, err := json.Marshal(translateRequest{
		Text:    req.Text,
		SrcLang: req.SourceLang,
		TgtLang: req.TargetLang,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + translatePath
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if req.ID != "" {
		httpReq.Header.Set(requestIDHeader, req.ID)
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: do request: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %w", ErrTransport, err)
	}

	slog.Debug("translate response",
		"id", req.ID,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	var out translateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("%w: unmarshal response (status %d): %w", ErrTransport, resp.StatusCode, err)
	}

	if out.TranslatedText != "" {
		return out.TranslatedText, nil
	}
	if out.Error != "" {
		return "", &APIError{Message: out.Error}
	}
	return "", fmt.Errorf("%w (status %d)", ErrEmptyResponse, resp.StatusCode)
}
