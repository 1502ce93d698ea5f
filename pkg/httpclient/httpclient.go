// Package httpclient is the shared JSON client for the upstream
// property-management API. One pooled transport is shared by every
// entity client; requests carry the bearer credential from a TokenSource.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

var defaultTransport = &http.Transport{
	DialContext: (&net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext,
	MaxIdleConns:        100,
	MaxConnsPerHost:     100,
	MaxIdleConnsPerHost: 10,
	IdleConnTimeout:     90 * time.Second,
}

// TokenSource yields the current bearer token. An empty token means
// no Authorization header is sent.
type TokenSource interface {
	Token() string
}

// APIError is a non-2xx upstream response. Message carries the server's
// structured message when the body has one, otherwise the HTTP status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream: %d %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

type Client struct {
	baseURL string
	creds   TokenSource
	http    *http.Client
}

func New(baseURL string, creds TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		creds:   creds,
		http: &http.Client{
			Timeout:   10 * time.Second,
			Transport: defaultTransport,
		},
	}
}

// Do issues one JSON request. body and out may be nil; out is left
// untouched on error or an empty (204) response.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.creds.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
		var serverMsg struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&serverMsg); err == nil && serverMsg.Message != "" {
			apiErr.Message = serverMsg.Message
		}
		log.Debug().Str("method", method).Str("path", path).
			Int("status", resp.StatusCode).Msg("upstream request failed")
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, nil)
}
