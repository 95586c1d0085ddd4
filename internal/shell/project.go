// Package shell renders the interactive terminal UI: a login screen while
// unauthenticated, and a home/profile tab pair once a session exists.
//
// Navigation is not a state machine. The visible screen stack is a pure
// projection of the session: every session change re-projects the stack, and
// no screen ever navigates manually on login or logout.
package shell

import "github.com/opencareer/jobcli/internal/session"

// ScreenID identifies a screen in the shell.
type ScreenID string

const (
	// ScreenLogin is the only screen reachable while unauthenticated.
	ScreenLogin ScreenID = "login"

	// ScreenHome lists job postings.
	ScreenHome ScreenID = "home"

	// ScreenProfile shows the signed-in user and offers logout.
	ScreenProfile ScreenID = "profile"
)

// Stack is the ordered set of reachable screens; the first entry is the
// screen shown by default.
type Stack []ScreenID

// Contains reports whether the screen is reachable in this stack.
func (s Stack) Contains(id ScreenID) bool {
	for _, candidate := range s {
		if candidate == id {
			return true
		}
	}
	return false
}

// Active returns the default screen of the stack.
func (s Stack) Active() ScreenID {
	if len(s) == 0 {
		return ScreenLogin
	}
	return s[0]
}

// Project maps the session onto the reachable screen stack. Nil session:
// the login screen alone. Non-nil: the authenticated tab set, with the login
// screen unreachable.
func Project(s session.Session) Stack {
	if s == nil {
		return Stack{ScreenLogin}
	}
	return Stack{ScreenHome, ScreenProfile}
}
