// Package httpclient wraps net/http with base-URL handling, default headers,
// per-attempt timeouts and a retry policy, for use by the remote service
// proxies.
package httpclient

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

	"github.com/SscSPs/fx_batch_converter/internal/apperrors"
)

const (
	// DefaultTimeout bounds a single request attempt.
	DefaultTimeout = 15 * time.Second
	// DefaultRetries is the number of retry attempts after the initial request.
	DefaultRetries = 5
	// DefaultBackoffBase is the delay before the first retry; it doubles on
	// each subsequent attempt.
	DefaultBackoffBase = 100 * time.Millisecond
)

// Response is the outcome of a successful HTTP call.
type Response struct {
	StatusCode int
	Body       []byte
}

// Client issues GET/POST requests against one remote service base URL.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	headers     map[string]string
	timeout     time.Duration
	retries     int
	backoffBase time.Duration
	logger      *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout overrides the per-attempt request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithRetries overrides the number of retry attempts.
func WithRetries(n int) Option {
	return func(c *Client) {
		if n >= 0 {
			c.retries = n
		}
	}
}

// WithHeaders replaces the default request headers.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) { c.headers = headers }
}

// WithBackoffBase overrides the base delay of the exponential backoff.
func WithBackoffBase(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.backoffBase = d
		}
	}
}

// WithLogger sets the structured logger used for call outcomes.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHTTPClient replaces the underlying http.Client (used by tests).
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// New creates a Client for the given service base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  &http.Client{},
		headers:     map[string]string{"Content-Type": "application/json"},
		timeout:     DefaultTimeout,
		retries:     DefaultRetries,
		backoffBase: DefaultBackoffBase,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get issues a GET request against path (relative to the base URL).
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// Post issues a POST request with body encoded as JSON.
func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, payload)
}

// do runs the request with retries. Network-level failures are retried for
// any method; server errors (5xx) are retried only for idempotent methods.
// 4xx responses are never retried. Delay between attempts doubles from the
// backoff base.
func (c *Client) do(ctx context.Context, method, path string, payload []byte) (*Response, error) {
	url := c.baseURL + path

	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			if err := sleepWithContext(ctx, c.backoffBase<<(attempt-1)); err != nil {
				return nil, lastErr
			}
		}

		resp, err := c.attempt(ctx, method, url, payload)
		if err == nil {
			c.logger.Debug("Success response received",
				slog.String("method", method),
				slog.String("endpoint", path),
				slog.Int("status", resp.StatusCode),
			)
			return resp, nil
		}

		lastErr = err
		if !retryable(method, err) {
			break
		}
		c.logger.Warn("Retrying request",
			slog.String("method", method),
			slog.String("endpoint", path),
			slog.Int("attempt", attempt+1),
			slog.String("error", err.Error()),
		)
	}

	c.logger.Error("Failed response received",
		slog.String("method", method),
		slog.String("endpoint", path),
		slog.String("error", lastErr.Error()),
	)
	return nil, lastErr
}

// attempt issues one request with its own timeout, so a retry starts a fresh
// clock instead of inheriting the time spent by previous attempts.
func (c *Client) attempt(ctx context.Context, method, url string, payload []byte) (*Response, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(attemptCtx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// No response exists (DNS failure, reset, timeout); synthesize a
		// proxy-error message so callers still get a readable cause.
		return nil, fmt.Errorf("%w: proxy error: %v", apperrors.ErrNetwork, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: proxy error: failed to read response body: %v", apperrors.ErrNetwork, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &apperrors.HTTPError{StatusCode: resp.StatusCode, Body: respBody}
	}
	return &Response{StatusCode: resp.StatusCode, Body: respBody}, nil
}

// retryable reports whether a failed attempt should be tried again.
func retryable(method string, err error) bool {
	if errors.Is(err, apperrors.ErrNetwork) {
		return true
	}
	var httpErr *apperrors.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode >= http.StatusInternalServerError && idempotent(method)
	}
	return false
}

// idempotent reports whether a method is safe to repeat after a server error.
// POST is excluded: transaction submission must not be replayed.
func idempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	}
	return false
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
