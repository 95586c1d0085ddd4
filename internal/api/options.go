package api

import (
	"log/slog"
	"net/http"
	"time"
)

// Option is a functional option for configuring a Client.
type Option func(*Client)

// WithBaseURL sets the API server base URL (scheme://host[:port]).
// If not set, defaults to the JOBCLI_BASE_URL environment variable.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithToken sets the bearer token attached to every request.
// NewAuthenticated uses this internally; an empty token means no
// Authorization header is sent.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithTimeout sets the HTTP request timeout.
// If not set, defaults to 15 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient sets a custom http.Client for making requests.
// This is useful for testing, proxying, or custom transport configurations.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the structured logger used by the client.
// If not set, defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithOAuthClient sets the OAuth2 client id and secret used by
// ExchangePassword for the password-grant form.
func WithOAuthClient(id, secret string) Option {
	return func(c *Client) {
		c.oauthClientID = id
		c.oauthClientSecret = secret
	}
}
