package codex

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

	"github.com/emberlore/codex/internal/middleware"
)

// DefaultTimeout bounds every backend call when no override is supplied.
const DefaultTimeout = 10 * time.Second

// RequestHook is the outgoing interception seam. It runs on every request
// after standard headers are set and before the request is sent.
type RequestHook func(*http.Request)

// Client is the shared transport for the content backend. It is read-only
// after construction and safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
	hook    RequestHook
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithTimeout overrides the per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithHTTPClient swaps the underlying HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger used at the failure boundary.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithRequestHook installs the outgoing interception seam.
func WithRequestHook(hook RequestHook) Option {
	return func(c *Client) { c.hook = hook }
}

// New creates a client rooted at the backend's /api base path.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/") + "/api",
		http:    &http.Client{Timeout: DefaultTimeout},
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CallOption adjusts a single request.
type CallOption func(*http.Request)

// WithBearer attaches an explicit bearer token to one call. The client
// itself never stores a token.
func WithBearer(token string) CallOption {
	return func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	}
}

// RawQuery bypasses Query encoding for one call. The place-by-world
// lookup uses it to keep its injected filter positionally first.
type RawQuery string

// Get issues a GET for the given path and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, query any, out any, opts ...CallOption) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out, opts...)
}

// Post issues a JSON POST and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body any, out any, opts ...CallOption) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out, opts...)
}

// Put issues a JSON PUT and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body any, out any, opts ...CallOption) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out, opts...)
}

// Delete issues a DELETE. The response body is discarded.
func (c *Client) Delete(ctx context.Context, path string, opts ...CallOption) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil, opts...)
}

func encodeQuery(query any) string {
	switch q := query.(type) {
	case nil:
		return ""
	case Query:
		return q.Encode()
	case RawQuery:
		return string(q)
	default:
		return ""
	}
}

func (c *Client) do(ctx context.Context, method, path string, query any, body any, out any, opts ...CallOption) error {
	target := c.baseURL + path
	if qs := encodeQuery(query); qs != "" {
		target += "?" + qs
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Propagate the inbound request id when there is one so backend logs
	// correlate with ours.
	requestID := middleware.GetRequestID(ctx)
	if requestID == "" {
		requestID = uuid.New().String()
	}
	req.Header.Set("X-Request-ID", requestID)

	if c.hook != nil {
		c.hook(req)
	}
	for _, opt := range opts {
		opt(req)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logFailure(method, path, requestID, err)
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logFailure(method, path, requestID, err)
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeAPIError(resp.StatusCode, raw)
		c.logFailure(method, path, requestID, apiErr)
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decoding response body: %w", err)
		}
	}
	return nil
}

// logFailure is the incoming interception seam: every transport-level
// failure is logged once here before being returned unchanged.
func (c *Client) logFailure(method, path, requestID string, err error) {
	c.log.Error("backend request failed",
		slog.String("method", method),
		slog.String("path", path),
		slog.String("request_id", requestID),
		slog.String("error", err.Error()),
	)
}
