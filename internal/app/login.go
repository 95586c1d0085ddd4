package app

import (
	"context"

	"github.com/opencareer/jobcli/internal/session"
)

// msgMissingCredentials is the inline validation message.
const msgMissingCredentials = "enter username and password"

// Login runs one login attempt: validate locally, exchange the credentials
// for a token, persist the token, fetch the current user with it, and commit
// the session. The flow state is observable throughout; only one attempt may
// be in flight at a time.
//
// On any network or API failure the session stays unchanged and the flow
// parks in StateFailed. A token persisted before a failed current-user fetch
// is removed again, so the session is nil exactly when no token is persisted.
func (f *Flow) Login(ctx context.Context, creds Credentials) error {
	if !f.begin() {
		return ErrLoginInFlight
	}

	// Validation never touches the network.
	if creds.Username == "" || creds.Password == "" {
		err := &ValidationError{Message: msgMissingCredentials}
		f.reject(err)
		return err
	}

	f.setState(StateSubmitting)

	tok, err := f.clients.Client().ExchangePassword(ctx, creds.Username, creds.Password)
	if err != nil {
		f.logger.Error("token exchange failed", "username", creds.Username, "error", err)
		f.fail(err)
		return err
	}

	if err := f.tokens.Save(tok.AccessToken); err != nil {
		f.logger.Error("token persist failed", "error", err)
		f.fail(err)
		return err
	}

	user, err := f.clients.Authenticated(tok.AccessToken).CurrentUser(ctx)
	if err != nil {
		f.logger.Error("current-user fetch failed", "error", err)
		// Roll back the token write: a persisted token with a nil session
		// would break the session/token invariant.
		if clearErr := f.tokens.Clear(); clearErr != nil {
			f.logger.Error("token rollback failed", "error", clearErr)
		}
		f.fail(err)
		return err
	}

	f.sessions.Dispatch(session.LoginAction(user))
	f.succeed()
	f.logger.Info("logged in", "user_id", user.ID, "username", user.Username)
	return nil
}

// FederatedLoginURL returns the browser entry point for Google login.
func (f *Flow) FederatedLoginURL() string {
	return f.clients.Client().FederatedLoginURL()
}

// OpenFederatedLogin opens the Google login page in the system browser.
// The flow ends there: the client has no deep-link or callback handler, so a
// token issued through the browser never re-enters this process.
func (f *Flow) OpenFederatedLogin() error {
	url := f.FederatedLoginURL()
	f.logger.Info("opening federated login", "url", url)
	return f.openURL(url)
}
