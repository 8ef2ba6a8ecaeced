// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package api is the transport layer for the gallery REST API. One Client
// owns the HTTP connection, attaches the bearer token from the persisted
// token store to every request, and maps HTTP failures to human-readable
// errors in a single place so resource wrappers stay thin.
package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"gallerydeck/internal/token"
)

const (
	// DefaultTimeout bounds every API request, uploads included.
	DefaultTimeout = 30 * time.Second

	// basePath prefixes every endpoint path.
	basePath = "/api/v1"
)

// Hooks are the callbacks the application injects at construction time.
// OnUnauthorized fires after a 401 has cleared the persisted token; the
// front end uses it to send the user back to the login screen. OnError
// receives the mapped message of every failed request for display.
// Either may be nil.
type Hooks struct {
	OnUnauthorized func()
	OnError        func(message string)
}

// Client performs authenticated requests against the gallery API.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  token.Source
	hooks   Hooks
}

// New creates a Client for the API at baseURL. A non-positive timeout
// falls back to DefaultTimeout.
func New(baseURL string, timeout time.Duration, tokens token.Source, hooks Hooks) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		hooks:   hooks,
	}
}

// get performs a GET request and decodes the response into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// do builds, sends, and decodes one JSON request. body is marshalled when
// non-nil; out is decoded into when non-nil. All error responses flow
// through fail so status mapping and hooks happen exactly once.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api marshal: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reader)
	if err != nil {
		return fmt.Errorf("api request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return c.network(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("api read body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return c.fail(resp.StatusCode, respBody)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("api unmarshal: %w", err)
		}
	}
	return nil
}

// endpoint joins the base URL, API prefix, path, and encoded query.
func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + basePath + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// authorize attaches the bearer token when one is stored. A read failure
// is treated as no token: the server will answer 401 and the normal
// invalidation path takes over.
func (c *Client) authorize(req *http.Request) {
	tok, err := c.tokens.Get()
	if err != nil || tok == "" {
		return
	}
	req.Header.Set("Authorization", "Bearer "+tok)
}

// fail converts an error response into *Error, clears the persisted token
// on 401, and fires the injected hooks.
func (c *Client) fail(status int, body []byte) error {
	e := newError(status, extractDetail(body))

	if status == http.StatusUnauthorized {
		// The stored token is no longer accepted; erase it so the next
		// start does not restore a dead session.
		if err := c.tokens.Clear(); err != nil {
			slog.Warn("failed to clear rejected token", "error", err)
		}
		if c.hooks.OnUnauthorized != nil {
			c.hooks.OnUnauthorized()
		}
	}
	if c.hooks.OnError != nil {
		c.hooks.OnError(e.Message)
	}
	return e
}

// network wraps a transport-level failure (DNS, refused, timeout) in the
// same *Error shape as HTTP failures so callers handle one type.
func (c *Client) network(err error) error {
	e := &Error{Message: "network error, please check your connection"}
	if c.hooks.OnError != nil {
		c.hooks.OnError(e.Message)
	}
	return fmt.Errorf("%w: %w", e, err)
}

// extractDetail pulls the server's "detail" field out of an error body.
// Returns "" when the body is not JSON or carries no usable detail.
func extractDetail(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Detail
}
