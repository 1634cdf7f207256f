// Package api is the dashboard's client for the shop backend API.
//
// Request bodies are snake-cased before they are sent and responses are
// camel-cased before they are returned, so callers work in the UI convention.
// Resource writes are validated against the entity schemas first; an invalid
// payload never reaches the network.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/km-arc/taller-dashboard/framework/casing"
)

var (
	// ErrBackend matches any *APIError via errors.Is.
	ErrBackend = errors.New("backend request failed")

	// ErrResponseTooLarge is returned when a backend body exceeds MaxResponseBytes.
	ErrResponseTooLarge = errors.New("backend response too large")
)

// MaxResponseBytes caps the size of a backend response body.
const MaxResponseBytes = 4 << 20

// APIError is a non-2xx answer from the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: status %d", ErrBackend, e.Status)
	}
	return fmt.Sprintf("%s: status %d: %s", ErrBackend, e.Status, e.Message)
}

// Is reports whether target is ErrBackend.
func (e *APIError) Is(target error) bool { return target == ErrBackend }

// Client talks JSON to the backend API.
type Client struct {
	base   *url.URL
	http   *http.Client
	token  string
	logger *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithToken sends token as a bearer token on every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithLogger sets the logger used for request traces.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a Client for the API rooted at baseURL.
func New(baseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("api: parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("api: base url %q must be absolute", baseURL)
	}

	c := &Client{
		base:   u,
		http:   &http.Client{Timeout: timeout},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Do sends body (snake-cased) to path and returns the camel-cased response.
// A 204 or empty response yields nil.
func (c *Client) Do(ctx context.Context, method, path string, body any) (any, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(casing.ToSnakeCase(body))
		if err != nil {
			return nil, fmt.Errorf("api: encode body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base.String()+path, reader)
	if err != nil {
		return nil, fmt.Errorf("api: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	reqID := middleware.GetReqID(ctx)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	req.Header.Set(middleware.RequestIDHeader, reqID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("api: read response: %w", err)
	}
	if len(data) > MaxResponseBytes {
		return nil, fmt.Errorf("api: %s %s: %w (over %d bytes)", method, path, ErrResponseTooLarge, MaxResponseBytes)
	}

	c.logger.LogAttrs(ctx, slog.LevelDebug, "backend request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
		slog.String("request_id", reqID),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Status: resp.StatusCode, Message: errorMessage(data)}
	}
	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	v, err := casing.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("api: decode response: %w", err)
	}
	return casing.ToCamelCase(v), nil
}

// errorMessage pulls "message" or "error" out of a JSON error body.
func errorMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(data, &body) != nil {
		return strings.TrimSpace(string(data))
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}
