package app

import (
	"context"

	"github.com/opencareer/jobcli/internal/api"
)

// Jobs fetches one page of job listings for the home screen. The listing
// endpoint is public; the bearer token is attached when a session exists so
// the server can personalise results.
func (f *Flow) Jobs(ctx context.Context, query string, page int) (*api.JobPage, error) {
	client := f.clients.Client()
	if token, err := f.tokens.Load(); err == nil && token != "" {
		client = f.clients.Authenticated(token)
	}
	return client.Jobs(ctx, query, page)
}

// Register creates a new account. It does not log the new user in; the
// caller runs the normal login flow afterwards.
func (f *Flow) Register(ctx context.Context, in api.RegisterInput) (*api.User, error) {
	if in.Username == "" || in.Password == "" {
		return nil, &ValidationError{Message: msgMissingCredentials}
	}
	return f.clients.Client().Register(ctx, in)
}
