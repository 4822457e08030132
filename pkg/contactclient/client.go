package contactclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// DefaultPath is the relay endpoint relative to the site origin.
const DefaultPath = "/api/contact"

// Fields are the values a visitor types into the contact form.
type Fields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Result is a parsed relay response.
type Result struct {
	StatusCode int
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Error      string `json:"error"`
}

// OK reports a 2xx status.
func (r *Result) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Client posts contact submissions to a relay.
type Client struct {
	baseURL    string
	path       string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.httpClient = c
		}
	}
}

// WithPath overrides DefaultPath.
func WithPath(path string) Option {
	return func(cl *Client) {
		if path != "" {
			cl.path = "/" + strings.TrimLeft(path, "/")
		}
	}
}

// New creates a client for the site at baseURL (e.g. "https://gav.dev").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		path:       DefaultPath,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Send issues exactly one POST with f as JSON. A nil error means the relay
// answered with a parseable JSON body, whatever the status. Connection
// failures wrap ErrTransport and unparseable bodies wrap ErrInvalidResponse.
func (c *Client) Send(ctx context.Context, f Fields) (*Result, error) {
	payload, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	var res Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("%w: status %d: %v", ErrInvalidResponse, resp.StatusCode, err)
	}
	res.StatusCode = resp.StatusCode
	return &res, nil
}
