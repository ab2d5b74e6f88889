// Package client is the Go SDK for the marketplace API. It bundles the three
// pieces every consumer needs: a session store persisted across process
// restarts, a request gateway that attaches the bearer credential to every
// call, and role-based guard predicates for gating navigation.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

// APIError is the decoded error envelope of a non-2xx response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Option customises a Client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the underlying transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithStorage sets the session persistence backend. Defaults to an
// in-process store that does not survive restarts.
func WithStorage(s SessionStorage) Option {
	return func(c *Client) { c.storage = s }
}

// Client is the single outbound gateway to the marketplace API. All resource
// methods flow through do, which attaches the session credential when one is
// present. There is no retry or caching policy; the transport's defaults
// apply.
type Client struct {
	baseURL string
	http    *http.Client
	storage SessionStorage

	mu      sync.RWMutex
	session Session
}

// New creates a Client for the API at baseURL and rehydrates any persisted
// session.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
		storage: &memoryStorage{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.rehydrate()
	return c
}

// do performs one API request. A bearer Authorization header is attached iff
// the current session holds a token; body and out are JSON-encoded and
// -decoded when non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Session().Token; token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&envelope); err == nil && envelope.Error != "" {
		apiErr.Message = envelope.Error
	} else {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
