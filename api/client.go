// ABOUTME: HTTP client for the TrailTrack REST API
// ABOUTME: Attaches the bearer token and decodes JSON bodies and error details
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// TokenSource supplies the current bearer token. An empty string means no
// credential is held and the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// Client is a thin wrapper over the REST API. Each call is fire-once: no
// retries, no queueing. Callers decide how failures are reported.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// NewClient creates a client for the given base URL (no trailing slash).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// SetTokenSource wires the session store in after construction; the session
// itself needs the client for its auth calls.
func (c *Client) SetTokenSource(ts TokenSource) {
	c.tokens = ts
}

// BaseURL returns the configured API origin.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Error is a non-2xx response, carrying the server's detail when it sent one.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// netError wraps a transport failure so callers can report it generically.
type netError struct {
	err error
}

func (e *netError) Error() string { return "Network error" }
func (e *netError) Unwrap() error { return e.err }

// IsNetworkError reports whether err is a transport failure (the request
// never reached the server or the response never arrived).
func IsNetworkError(err error) bool {
	var ne *netError
	return errors.As(err, &ne)
}

// do issues one request. A non-nil body is JSON-encoded. A non-nil out is
// filled from a 2xx response body.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &netError{err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// decodeError pulls the {"detail": ...} payload the backend sends on 4xx.
func decodeError(resp *http.Response) error {
	apiErr := &Error{Status: resp.StatusCode}

	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		apiErr.Detail = payload.Detail
	}
	return apiErr
}

// Get fetches path into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post sends body to path, decoding a response into out when non-nil.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Patch sends a partial update to path.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

// Delete removes the resource at path.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// List fetches a whole collection, e.g. List[models.Lead](ctx, c, "/leads").
func List[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var items []T
	if err := c.Get(ctx, path, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Create posts a new record and returns the server's copy.
func Create[T any](ctx context.Context, c *Client, path string, record any) (T, error) {
	var created T
	if err := c.Post(ctx, path, record, &created); err != nil {
		var zero T
		return zero, err
	}
	return created, nil
}

// Update patches fields on one record and returns the server's copy.
func Update[T any](ctx context.Context, c *Client, path string, id int, fields any) (T, error) {
	var updated T
	if err := c.Patch(ctx, fmt.Sprintf("%s/%d", path, id), fields, &updated); err != nil {
		var zero T
		return zero, err
	}
	return updated, nil
}

// Remove deletes one record from a collection path.
func (c *Client) Remove(ctx context.Context, path string, id int) error {
	return c.Delete(ctx, fmt.Sprintf("%s/%d", path, id))
}
