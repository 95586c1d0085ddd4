package app

import (
	"context"
	"errors"

	"github.com/opencareer/jobcli/internal/api"
	"github.com/opencareer/jobcli/internal/session"
)

// Rehydrate restores the session from the persisted token on startup. It is
// the read-once half of the token lifecycle: load the token, fetch the
// current user with it, and commit the session.
//
// A missing token leaves the session nil. A 401 means the token went stale
// server-side; it is cleared so the next start skips the wasted round trip.
// A network failure keeps the token and leaves the session nil; the token
// may still be good once the server is reachable again.
func (f *Flow) Rehydrate(ctx context.Context) error {
	token, err := f.tokens.Load()
	if err != nil {
		f.logger.Error("token load failed", "error", err)
		return err
	}
	if token == "" {
		return nil
	}

	user, err := f.clients.Authenticated(token).CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			f.logger.Info("persisted token rejected, clearing it")
			if clearErr := f.tokens.Clear(); clearErr != nil {
				f.logger.Error("stale token removal failed", "error", clearErr)
			}
			return nil
		}
		f.logger.Warn("session rehydration failed, continuing unauthenticated", "error", err)
		return err
	}

	f.sessions.Dispatch(session.LoginAction(user))
	f.logger.Debug("session rehydrated", "user_id", user.ID)
	return nil
}
