package api

// Factory builds clients bound to a fixed set of options (base URL, OAuth
// client credentials, timeout, logger). The login flow uses it to create the
// unauthenticated client for the token exchange and then an authenticated
// client from the freshly issued token.
type Factory struct {
	opts []Option
}

// NewFactory creates a Factory with the given shared options.
func NewFactory(opts ...Option) Factory {
	return Factory{opts: opts}
}

// Client returns an unauthenticated client.
func (f Factory) Client() *Client {
	return New(f.opts...)
}

// Authenticated returns a client that sends the given bearer token.
func (f Factory) Authenticated(token string) *Client {
	return NewAuthenticated(token, f.opts...)
}
