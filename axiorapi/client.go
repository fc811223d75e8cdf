package axiorapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Version is reported in the User-Agent header of every request.
const Version = "0.1.0"

const (
	// DefaultBaseURL is the production Axiora API endpoint.
	DefaultBaseURL = "https://api.axiora.dev/v1"

	// EnvAPIKey is the environment variable holding the API key.
	EnvAPIKey = "AXIORA_API_KEY"

	// DefaultTimeout bounds a single API round trip.
	DefaultTimeout = 30 * time.Second
)

var ErrAPIKeyNotFound = errors.New("Axiora API key not found: set the AXIORA_API_KEY environment variable or pass an explicit key")

// ResolveAPIKey resolves the credential from exactly one source, in priority
// order: the explicit value, the AXIORA_API_KEY environment variable, a local
// .env file entry of the same name. The .env lookup goes through
// godotenv.Read so the process environment is never mutated.
func ResolveAPIKey(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		return v, nil
	}
	if env, err := godotenv.Read(); err == nil && env[EnvAPIKey] != "" {
		return env[EnvAPIKey], nil
	}
	return "", errors.WithStack(ErrAPIKeyNotFound)
}

// Client is the shared HTTP transport for the Axiora REST API.
// It holds the resolved credential and reuses one underlying http.Client
// across requests. A Client is immutable after New and safe for concurrent
// use.
type Client struct {
	apiKey     string
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithAPIKey supplies the credential explicitly, bypassing the environment
// and .env lookups.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithBaseURL overrides the API endpoint, e.g. to point at a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(baseURL, "/") }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout bounds a single round trip, overriding DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// New creates a Client, resolving the API key per ResolveAPIKey.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		// copy, so a caller-supplied client is not mutated
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	key, err := ResolveAPIKey(c.apiKey)
	if err != nil {
		return nil, err
	}
	c.apiKey = key
	return c, nil
}

// Do issues a single API request with params encoded as the query string and
// returns the raw response body. Non-2xx responses are returned as
// *StatusError; network failures as wrapped errors. No retries, no caching.
func (c *Client) Do(ctx context.Context, method, path string, params url.Values) ([]byte, error) {
	return c.do(ctx, method, path, params, nil)
}

// DoJSON issues a request carrying body as a JSON document, for compound
// operations whose parameter set does not fit a query string. No catalog
// operation uses it yet: every current endpoint is a GET, but the API's
// compound reads (compare, batch search) are documented to move to JSON
// bodies.
func (c *Client) DoJSON(ctx context.Context, method, path string, body any) ([]byte, error) {
	bs, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal request body")
	}
	return c.do(ctx, method, path, nil, bs)
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body []byte) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "axiora-go/"+Version)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}
	defer res.Body.Close()

	bs, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response")
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &StatusError{Status: res.StatusCode, Body: bs}
	}
	return bs, nil
}
