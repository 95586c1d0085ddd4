package app

import (
	"context"

	"github.com/opencareer/jobcli/internal/session"
)

// Logout tears the session down in two order-sensitive steps: first remove
// the persisted token, then dispatch the logout action. If the removal fails
// the session is left intact: the UI must not claim a logged-out state while
// a stale token may still exist on disk.
//
// Logging out while already logged out is a no-op.
func (f *Flow) Logout(ctx context.Context) error {
	if err := f.tokens.Clear(); err != nil {
		f.logger.Error("token removal failed, session left intact", "error", err)
		return err
	}

	f.sessions.Dispatch(session.LogoutAction())
	f.logger.Info("logged out")
	return nil
}
