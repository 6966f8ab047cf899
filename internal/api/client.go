package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultHTTPTimeout = 120 * time.Second

// TokenSource yields the current access token, or "" when the session holds
// none. Unauthenticated calls simply omit the Authorization header and rely on
// the backend to reject them.
type TokenSource interface {
	Token() string
}

// Config captures the runtime settings required to talk to the backend.
type Config struct {
	BaseURL        string
	TimeoutSeconds int
}

// Client wraps the Reels REST API.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenSource
	onUnauthorized func(context.Context)
	logger         *slog.Logger
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTokenSource attaches the session token source.
func WithTokenSource(source TokenSource) Option {
	return func(c *Client) {
		c.tokens = source
	}
}

// WithUnauthorizedHandler registers the hook invoked when a call is rejected
// with 401. It runs exactly once per failing call, before the error returns.
func WithUnauthorizedHandler(handler func(context.Context)) Option {
	return func(c *Client) {
		c.onUnauthorized = handler
	}
}

// WithLogger overrides the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient constructs a backend client using the supplied configuration.
func NewClient(cfg Config, opts ...Option) *Client {
	timeout := defaultHTTPTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	client := &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.baseURL == "" {
		client.baseURL = "http://localhost:8000"
	}
	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return client
}

// do performs one JSON request/response cycle. No retries: every failure is
// terminal for the triggering user action.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	body, err := c.send(ctx, method, path, payload, "application/json")
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("reels api: decode %s %s response: %w", method, path, err)
	}
	return nil
}

// send performs the request and returns the raw response body. Binary
// endpoints (PDF export) use it directly with a non-JSON accept type.
func (c *Client) send(ctx context.Context, method, path string, payload any, accept string) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("reels api: encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("reels api: new request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", accept)
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	if c.tokens != nil {
		if token := strings.TrimSpace(c.tokens.Token()); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	c.logger.Debug("api request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reels api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reels api: read %s %s response: %w", method, path, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.logger.Debug("api unauthorized", "path", path, "request_id", requestID)
		if c.onUnauthorized != nil {
			c.onUnauthorized(ctx)
		}
		return nil, &Error{Status: resp.StatusCode, Detail: parseDetail(body), RequestID: requestID}
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &Error{Status: resp.StatusCode, Detail: parseDetail(body), RequestID: requestID}
	}
	return body, nil
}
