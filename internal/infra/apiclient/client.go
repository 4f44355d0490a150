// Package apiclient is the single chokepoint for calls to the BeautyVerse backend.
//
// Every request gets a JSON content type and, when the injected storage holds
// an access token, a bearer Authorization header. A 401 clears the token and
// notifies subscribers (the session store) instead of importing them.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"beautyverse-storefront/internal/domain/identity"
	"beautyverse-storefront/internal/pkg/errs"
	"beautyverse-storefront/internal/pkg/kv"
)

// AccessTokenKey is where the session keeps the bearer token.
const AccessTokenKey = identity.AccessTokenKey

type AuthFailureHandler func(ctx context.Context)

type Client struct {
	baseURL string
	http    *http.Client
	tokens  kv.Storage
	logger  *slog.Logger

	mu       sync.RWMutex
	handlers []AuthFailureHandler
}

func New(baseURL string, httpClient *http.Client, tokens kv.Storage, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		tokens:  tokens,
		logger:  logger,
	}
}

// OnAuthFailure subscribes fn to 401 responses. Handlers run after the token
// has been removed, once per failing call.
func (c *Client) OnAuthFailure(fn AuthFailureHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, fn)
}

// Options are the per-call overrides. A Header entry with an empty value
// deletes that header, which multipart uploads use to drop the JSON content type.
type Options struct {
	Method string
	Header http.Header
	Body   io.Reader
}

// Result is a response body that parsed as JSON. The zero Result stands for an
// empty object: 204, an empty body, or a body that was not JSON.
type Result struct {
	raw json.RawMessage
}

func (r Result) IsEmpty() bool { return len(r.raw) == 0 }

func (r Result) Raw() json.RawMessage { return r.raw }

// Decode unmarshals into v. An empty Result leaves v untouched.
func (r Result) Decode(v any) error {
	if v == nil || r.IsEmpty() {
		return nil
	}
	if err := json.Unmarshal(r.raw, v); err != nil {
		return errs.Mark(errs.Wrap(err, "decode backend payload"), ErrUnexpectedPayload)
	}
	return nil
}

func (c *Client) Request(ctx context.Context, path string, opts Options) (Result, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, opts.Body)
	if err != nil {
		return Result{}, errs.Wrapf(err, "build request %s %s", method, path)
	}
	c.applyHeaders(ctx, req, opts.Header)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("API transport error", "method", method, "path", path, "error", err.Error())
		return Result{}, errs.Mark(errs.Wrapf(err, "%s %s", method, path), ErrTransport)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, errs.Mark(errs.Wrapf(err, "read body %s %s", method, path), ErrTransport)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.handleAuthFailure(ctx)
	}

	if resp.StatusCode == http.StatusNoContent {
		return Result{}, nil
	}

	var result Result
	if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 && json.Valid(trimmed) {
		result.raw = trimmed
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(resp.StatusCode, result.raw)
		c.logger.Warn("API error", "method", method, "path", path, "status", resp.StatusCode, "message", apiErr.Message)
		return Result{}, apiErr
	}

	return result, nil
}

func (c *Client) applyHeaders(ctx context.Context, req *http.Request, overrides http.Header) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	token, ok, err := c.tokens.Get(ctx, AccessTokenKey)
	if err != nil {
		c.logger.Warn("failed to read access token, sending anonymously", "error", err.Error())
	}
	if ok && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	for key, values := range overrides {
		if len(values) == 0 || (len(values) == 1 && values[0] == "") {
			req.Header.Del(key)
			continue
		}
		req.Header[http.CanonicalHeaderKey(key)] = values
	}
}

func (c *Client) handleAuthFailure(ctx context.Context) {
	c.logger.Warn("Session expired, clearing access token")
	if err := c.tokens.Remove(ctx, AccessTokenKey); err != nil {
		c.logger.Error("failed to clear access token", "error", err.Error())
	}

	c.mu.RLock()
	handlers := make([]AuthFailureHandler, len(c.handlers))
	copy(handlers, c.handlers)
	c.mu.RUnlock()

	for _, h := range handlers {
		h(ctx)
	}
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

// PostForm sends form as multipart/form-data; the writer's boundary content
// type replaces the JSON default.
func (c *Client) PostForm(ctx context.Context, path string, form *Form, out any) error {
	body, contentType, err := form.encode()
	if err != nil {
		return err
	}
	result, err := c.Request(ctx, path, Options{
		Method: http.MethodPost,
		Header: http.Header{"Content-Type": []string{contentType}},
		Body:   body,
	})
	if err != nil {
		return err
	}
	return result.Decode(out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	opts := Options{Method: method}
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return errs.Wrapf(err, "encode body %s %s", method, path)
		}
		opts.Body = bytes.NewReader(b)
	}

	result, err := c.Request(ctx, path, opts)
	if err != nil {
		return err
	}
	return result.Decode(out)
}

// ImageURL resolves a media path from a backend payload. Absolute URLs pass through.
func (c *Client) ImageURL(path string) string {
	switch {
	case path == "":
		return ""
	case strings.HasPrefix(path, "http://"), strings.HasPrefix(path, "https://"), strings.HasPrefix(path, "data:"):
		return path
	case strings.HasPrefix(path, "/"):
		return c.baseURL + path
	default:
		return c.baseURL + "/" + path
	}
}
