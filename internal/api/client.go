package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// maxErrorBody bounds how much of an error response body is kept in APIError.
const maxErrorBody = 2048

// Client talks to the OpenCareer API. A Client is safe for concurrent use.
type Client struct {
	baseURL           string
	token             string
	timeout           time.Duration
	userAgent         string
	oauthClientID     string
	oauthClientSecret string
	httpClient        *http.Client
	logger            *slog.Logger
}

// New creates an unauthenticated client bound to a base URL.
// It reads defaults from JOBCLI_* environment variables; options override them.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:           os.Getenv("JOBCLI_BASE_URL"),
		oauthClientID:     os.Getenv("JOBCLI_OAUTH_CLIENT_ID"),
		oauthClientSecret: os.Getenv("JOBCLI_OAUTH_CLIENT_SECRET"),
		timeout:           15 * time.Second,
		userAgent:         "jobcli",
		logger:            slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{
			Timeout: c.timeout,
		}
	}

	return c
}

// NewAuthenticated creates a client identical to New plus an
// "Authorization: Bearer <token>" header on every request.
func NewAuthenticated(token string, opts ...Option) *Client {
	return New(append(opts, WithToken(token))...)
}

// BaseURL returns the configured base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return strings.TrimRight(c.baseURL, "/")
}

// Get performs a GET request and decodes the JSON response into out.
// Pass a nil out to discard the response body.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.doRequest(ctx, http.MethodGet, path, "", nil, out)
}

// Post performs a POST request with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}
	return c.doRequest(ctx, http.MethodPost, path, "application/json", reader, out)
}

// PostForm performs a POST request with a urlencoded form body and decodes
// the response into out.
func (c *Client) PostForm(ctx context.Context, path string, form url.Values, out any) error {
	reader := strings.NewReader(form.Encode())
	return c.doRequest(ctx, http.MethodPost, path, "application/x-www-form-urlencoded", reader, out)
}

// Delete performs a DELETE request and discards the response body.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.doRequest(ctx, http.MethodDelete, path, "", nil, nil)
}

// doRequest performs an HTTP request against the API server and decodes the
// JSON response into result. Transport failures are wrapped in *NetworkError,
// non-2xx responses in *APIError.
func (c *Client) doRequest(ctx context.Context, method, path, contentType string, body io.Reader, result any) error {
	u := c.BaseURL() + path

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("User-Agent", c.userAgent)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed before a response arrived",
			"method", method,
			"path", path,
			"request_id", requestID,
			"error", err,
		)
		return &NetworkError{Cause: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Body:       truncate(string(respBody), maxErrorBody),
			RequestID:  requestID,
		}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}

	return nil
}

// Jobs fetches one page of job listings. query filters by title when
// non-empty, page is 1-based; zero means the first page.
func (c *Client) Jobs(ctx context.Context, query string, page int) (*JobPage, error) {
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}
	if page > 1 {
		params.Set("page", fmt.Sprintf("%d", page))
	}

	path := EndpointJobs
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var out JobPage
	if err := c.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CurrentUser fetches the user record for the client's bearer token.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var u User
	if err := c.Get(ctx, EndpointCurrentUser, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Register creates a new user account and returns the created record.
func (c *Client) Register(ctx context.Context, in RegisterInput) (*User, error) {
	var u User
	if err := c.Post(ctx, EndpointRegister, in, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// FederatedLoginURL returns the browser URL for the Google login entry point.
// The client never handles the callback; completing the federated flow is up
// to the browser session.
func (c *Client) FederatedLoginURL() string {
	return c.BaseURL() + EndpointGoogleLogin
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
