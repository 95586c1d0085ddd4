// Package session holds the in-memory representation of the signed-in user
// and the pure reducer that is the only way to change it.
//
// A Session is nil exactly when no valid token is persisted: the login flow
// commits a session only after the token write succeeds, and the logout flow
// clears the session only after the token removal succeeds.
package session

import "github.com/opencareer/jobcli/internal/api"

// Session is the authenticated user record, or nil when unauthenticated.
type Session = *api.User

// actionKind is the closed set of reducer action tags.
type actionKind int

const (
	actionNone actionKind = iota
	actionLogin
	actionLogout
)

// Action is a tagged variant consumed by Reduce. The zero Action is a no-op.
// Actions are built through LoginAction and LogoutAction; no other kinds can
// be constructed.
type Action struct {
	kind    actionKind
	payload Session
}

// LoginAction replaces the current session with the given user record.
func LoginAction(u *api.User) Action {
	return Action{kind: actionLogin, payload: u}
}

// LogoutAction clears the session unconditionally.
func LogoutAction() Action {
	return Action{kind: actionLogout}
}

// Reduce maps (current session, action) to the next session. It is pure and
// total: no I/O, no hidden state, same inputs always give the same output.
func Reduce(current Session, a Action) Session {
	switch a.kind {
	case actionLogin:
		return a.payload
	case actionLogout:
		return nil
	default:
		return current
	}
}
