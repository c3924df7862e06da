package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/afristyle/afristyle/internal/client/models"
	"github.com/afristyle/afristyle/internal/common"
)

// defaultTimeout is the client-wide timeout shared by every call, mutations
// included; no per-operation timeout is layered on top.
const defaultTimeout = 10 * time.Second

// HTTPClient talks JSON to the AfriStyle backend over a fixed base URL.
// All responses are expected in the conventional envelope
// {success|status, data, message, total?}.
type HTTPClient struct {
	baseURL        string
	hc             *http.Client
	token          string
	onUnauthorized func()
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient swaps the underlying http.Client (tests, custom transports).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.hc = hc }
}

// WithUnauthorizedHook registers fn to run whenever any request comes back
// 401. The session layer uses this to invalidate the local session
// regardless of which operation tripped it.
func WithUnauthorizedHook(fn func()) Option {
	return func(c *HTTPClient) { c.onUnauthorized = fn }
}

func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *HTTPClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

// envelope is the backend's uniform JSON response shape. Some endpoints
// report `success: true`, older ones `status: "OK"`; both are accepted.
type envelope struct {
	Success *bool           `json:"success,omitempty"`
	Status  string          `json:"status,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Total   *int            `json:"total,omitempty"`
}

func (e *envelope) ok() bool {
	if e.Success != nil {
		return *e.Success
	}
	switch strings.ToLower(e.Status) {
	case "ok", "success":
		return true
	}
	return false
}

// encodeFilter serializes only the present (non-nil) filter fields; absent
// fields are omitted entirely rather than sent as empty values.
func encodeFilter(f *models.ListFilter) url.Values {
	q := url.Values{}
	if f == nil {
		return q
	}
	if f.Page != nil {
		q.Set("page", strconv.Itoa(*f.Page))
	}
	if f.Limit != nil {
		q.Set("limit", strconv.Itoa(*f.Limit))
	}
	if f.Category != nil {
		q.Set("category", *f.Category)
	}
	if f.Search != nil {
		q.Set("search", *f.Search)
	}
	if f.Status != nil {
		q.Set("status", *f.Status)
	}
	return q
}

// do performs one request/response round trip: marshals body (if any),
// attaches the bearer token, sends, and decodes the envelope into out.
// Returns the envelope so callers can read Total.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body any, out any) (*envelope, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+c.token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		// transport failure or client-wide timeout
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return nil, common.ErrUnauthorized
	}
	if resp.StatusCode >= 500 {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= 400 {
			return nil, &Error{StatusCode: resp.StatusCode}
		}
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode >= 400 || !env.ok() {
		return nil, &Error{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("decode data: %w", err)
		}
	}

	return &env, nil
}
