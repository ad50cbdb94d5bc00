// Package outbound provides the request abstraction panels use to reach the CV API.
// Every call carries a per-request timeout layered on the caller's context and
// is never retried automatically.
package outbound

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout is the per-request timeout when none is configured.
const DefaultTimeout = 30 * time.Second

// maxErrorBody bounds how much of a failed response is kept in the error message
const maxErrorBody = 512

// Client posts JSON payloads to the CV API
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	headers    map[string]string
}

// Option configures a Client
type Option func(*Client)

// WithTimeout sets the per-request timeout. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithHeader adds a header sent on every request
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// New creates a Client for the API rooted at baseURL
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    DefaultTimeout,
		httpClient: http.DefaultClient,
		headers:    make(map[string]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Timeout returns the per-request timeout
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// PostJSON posts in as JSON to path and decodes a 2xx response body into out.
// out may be nil when the response body is not needed.
func (c *Client) PostJSON(ctx context.Context, path string, in, out any) error {
	body, _, err := c.Post(ctx, path, in)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return &APICallError{Path: path, Message: "empty response body"}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &APICallError{Path: path, Message: "failed to decode response body", Cause: err}
	}
	return nil
}

// Post posts in as JSON to path and returns the raw 2xx response body with its content type
func (c *Client) Post(ctx context.Context, path string, in any) ([]byte, string, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return nil, "", &APICallError{Path: path, Message: "failed to encode request body", Cause: err}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path), bytes.NewReader(payload))
	if err != nil {
		return nil, "", &APICallError{Path: path, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", &APICallError{Path: path, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &APICallError{Path: path, Status: resp.StatusCode, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", &APICallError{Path: path, Status: resp.StatusCode, Message: errorMessage(resp.StatusCode, body)}
	}

	return body, resp.Header.Get("Content-Type"), nil
}

func (c *Client) url(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

// errorMessage prefers the server's {"error": "..."} body over the status text
func errorMessage(status int, body []byte) string {
	var apiErr struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
		return apiErr.Error
	}
	text := strings.TrimSpace(string(body))
	if text == "" {
		return http.StatusText(status)
	}
	if len(text) > maxErrorBody {
		text = text[:maxErrorBody]
	}
	return fmt.Sprintf("%s: %s", http.StatusText(status), text)
}
