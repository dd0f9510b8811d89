// Package apiclient calls the catalog HTTP API on behalf of the MCP bridge
// and the analysis command.
package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultTimeout = 10 * time.Second
	maxErrorBody   = 4 << 10
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	StatusCode int
	Status     string
	// Message is the "error" field of a JSON error body, when present.
	Message string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Status)
	if e.Message != "" {
		msg += " (" + e.Message + ")"
	}
	return msg
}

type Client struct {
	baseURL *url.URL
	http    *http.Client
	timeout time.Duration
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds every call, including reading the body.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("base url %q has no host", baseURL)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""

	c := &Client{
		baseURL: u,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: c.timeout}
	}
	return c, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Get requests the path built from segments (each escaped as one path
// segment) with the given query, and returns the raw JSON body of a 2xx
// response.
func (c *Client) Get(ctx context.Context, segments []string, query url.Values) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	target := c.resolve(segments, query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", target.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("GET %s: response is not valid JSON", target.Path)
	}
	return json.RawMessage(body), nil
}

func (c *Client) resolve(segments []string, query url.Values) *url.URL {
	u := *c.baseURL
	var raw, plain strings.Builder
	raw.WriteString(u.Path)
	plain.WriteString(u.Path)
	for _, segment := range segments {
		raw.WriteString("/")
		raw.WriteString(url.PathEscape(segment))
		plain.WriteString("/")
		plain.WriteString(segment)
	}
	u.Path = plain.String()
	u.RawPath = raw.String()
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return &u
}

func statusError(resp *http.Response) error {
	statusErr := &StatusError{
		StatusCode: resp.StatusCode,
		Status:     http.StatusText(resp.StatusCode),
	}
	if statusErr.Status == "" {
		statusErr.Status = resp.Status
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err == nil {
		var payload struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &payload) == nil {
			statusErr.Message = payload.Error
		}
	}
	return statusErr
}
