package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/loppen/marketplace-go/logger"
	"github.com/loppen/marketplace-go/observability"
	"github.com/loppen/marketplace-go/version"
)

// Client performs authenticated HTTP calls against the marketplace API.
// It is safe for concurrent use; the bearer token is the only shared
// mutable state.
type Client struct {
	httpClient *http.Client
	config     Config
	log        *logger.Logger
	tracing    bool
	metrics    *observability.RequestMetrics

	mu    sync.RWMutex
	token string
}

// Option customizes a Client.
type Option func(*Client)

// WithLogger enables debug logging of requests through the given logger.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithTransport replaces the underlying HTTP transport.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) { c.httpClient.Transport = rt }
}

// WithTracing enables an OpenTelemetry span per request.
func WithTracing() Option {
	return func(c *Client) { c.tracing = true }
}

// WithMetrics records request count and duration through the given metrics.
func WithMetrics(m *observability.RequestMetrics) Option {
	return func(c *Client) { c.metrics = m }
}

// New creates a client for the configured base URL.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		config:     cfg,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// SetToken replaces the session bearer token. Subsequent requests carry
// Authorization: Bearer <token> until it is changed or cleared.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ClearToken removes the session bearer token. Subsequent requests carry
// no Authorization header.
func (c *Client) ClearToken() {
	c.SetToken("")
}

// Token returns the current bearer token, or "" if none is set.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, nil, opts...)
}

// Post issues a POST request with the given body.
func (c *Client) Post(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, body, opts...)
}

// Put issues a PUT request with the given body.
func (c *Client) Put(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodPut, path, body, opts...)
}

// Patch issues a PATCH request with the given body.
func (c *Client) Patch(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodPatch, path, body, opts...)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodDelete, path, nil, opts...)
}

func (c *Client) do(ctx context.Context, method, path string, body any, opts ...RequestOption) (*Response, error) {
	req := Request{Method: method, Path: path, Body: body}
	for _, opt := range opts {
		opt(&req)
	}
	return c.Do(ctx, req)
}

// Do executes a request and returns the response. A non-2xx status yields
// the response together with an *APIError; transport-level failures
// propagate unchanged. No retry is attempted.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	var span observability.Span
	if c.tracing {
		ctx, span = observability.StartRequestSpan(ctx, req.Method, req.Path)
		defer span.End()
	}
	return c.execute(ctx, req, span)
}

func (c *Client) execute(ctx context.Context, req Request, span observability.Span) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.observe(ctx, req, 0, time.Since(start), span, err)
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	result := &Response{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
	}

	// 204 carries no body; decoding an empty body would fail downstream.
	if resp.StatusCode != http.StatusNoContent {
		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			c.observe(ctx, req, resp.StatusCode, time.Since(start), span, readErr)
			return nil, readErr
		}
		result.Body = body
	}

	if !result.IsSuccess() {
		apiErr := DecodeError(result.StatusCode, result.Body)
		c.observe(ctx, req, result.StatusCode, time.Since(start), span, apiErr)
		return result, apiErr
	}

	c.observe(ctx, req, result.StatusCode, time.Since(start), span, nil)
	return result, nil
}

// buildRequest constructs the *http.Request. Header precedence, lowest to
// highest: client defaults, computed auth/request-id/content-type headers,
// per-request headers.
func (c *Client) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	url := strings.TrimRight(c.config.BaseURL, "/") + "/" + strings.TrimLeft(req.Path, "/")

	body, contentType, err := encodeBody(req.Body)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, body)
	if err != nil {
		return nil, err
	}

	if len(req.Query) > 0 {
		q := httpReq.URL.Query()
		for k, v := range req.Query {
			q.Set(k, v)
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	httpReq.Header.Set("User-Agent", version.UserAgent())

	for k, v := range c.config.Headers {
		httpReq.Header.Set(k, v)
	}

	if c.config.RequestID && httpReq.Header.Get("X-Request-ID") == "" {
		httpReq.Header.Set("X-Request-ID", uuid.NewString())
	}

	// The token is read once here; rotating it later does not affect
	// requests already in flight.
	if token := c.Token(); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	return httpReq, nil
}

// encodeBody converts a body value into an io.Reader and content type.
// Multipart bodies carry the boundary content-type computed by the writer;
// everything else is JSON.
func encodeBody(body any) (io.Reader, string, error) {
	switch v := body.(type) {
	case nil:
		return nil, "", nil
	case *MultipartBody:
		return v.encode()
	case io.Reader:
		return v, "", nil
	case []byte:
		return bytes.NewReader(v), "", nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(data), "application/json", nil
	}
}

// observe reports the request outcome to the logger, metrics, and span.
func (c *Client) observe(ctx context.Context, req Request, status int, d time.Duration, span observability.Span, err error) {
	if c.log != nil {
		fields := logger.Fields(
			"method", req.Method,
			"path", req.Path,
			logger.FieldStatus, status,
			logger.FieldDuration, d.Milliseconds(),
		)
		if err != nil {
			c.log.Error("request failed", logger.MergeWithError(fields, err))
		} else {
			c.log.Debug("request completed", fields)
		}
	}
	if c.metrics != nil {
		c.metrics.Record(ctx, req.Method, req.Path, status, d)
	}
	if span != nil {
		observability.EndRequestSpan(span, status, err)
	}
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
