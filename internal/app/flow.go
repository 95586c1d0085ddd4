// Package app orchestrates the login and logout flows: credential exchange,
// token persistence, user-context propagation, and session teardown.
//
// The flows own every side effect in the session lifecycle. The reducer in
// internal/session stays pure; the token store owns durability; this package
// sequences them and enforces the ordering contracts (token before session on
// login, token removal before session teardown on logout).
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/pkg/browser"

	"github.com/opencareer/jobcli/internal/api"
	"github.com/opencareer/jobcli/internal/session"
)

// ErrLoginInFlight is returned when a login attempt is already submitting.
// Exactly one attempt may be in flight at a time.
var ErrLoginInFlight = errors.New("login already in progress")

// ValidationError is a local input failure, surfaced inline and never sent
// to the network.
type ValidationError struct {
	// Message is the user-facing text.
	Message string
}

// Error returns the user-facing message.
func (e *ValidationError) Error() string {
	return e.Message
}

// State is the login flow's observable state.
type State int

const (
	// StateIdle means no attempt is running.
	StateIdle State = iota
	// StateValidating means credentials are being checked locally.
	StateValidating
	// StateSubmitting means a network exchange is in flight. The submit
	// control stays disabled until the flow leaves this state.
	StateSubmitting
	// StateFailed means the last attempt failed; the flow re-arms to idle
	// on the next Login call.
	StateFailed
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// TokenStore is the durable home of the bearer token.
// *tokenstore.FileStore is the production implementation.
type TokenStore interface {
	// Load returns the persisted token, or "" when absent.
	Load() (string, error)
	// Save persists the token.
	Save(token string) error
	// Clear removes the persisted token; absent is a no-op.
	Clear() error
}

// Credentials is the transient login input. It is not retained after the
// attempt completes.
type Credentials struct {
	Username string
	Password string
}

// Flow sequences login, logout, and session rehydration.
type Flow struct {
	clients  api.Factory
	tokens   TokenStore
	sessions *session.Store
	logger   *slog.Logger

	mu      sync.Mutex
	state   State
	lastErr error

	// openURL is swapped in tests; defaults to the system browser.
	openURL func(url string) error
}

// NewFlow creates a Flow. All collaborators are injected; the Flow never
// reaches for globals.
func NewFlow(clients api.Factory, tokens TokenStore, sessions *session.Store, logger *slog.Logger) *Flow {
	return &Flow{
		clients:  clients,
		tokens:   tokens,
		sessions: sessions,
		logger:   logger,
		openURL:  browser.OpenURL,
	}
}

// State returns the login flow state.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// LastError returns the error of the most recent failed attempt, or nil.
func (f *Flow) LastError() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// Session returns the current session from the store.
func (f *Flow) Session() session.Session {
	return f.sessions.Current()
}

// setState transitions the observable state.
func (f *Flow) setState(s State) {
	f.mu.Lock()
	f.state = s
	f.mu.Unlock()
}

// begin claims the single in-flight login slot. It reports false when an
// attempt is already submitting.
func (f *Flow) begin() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateValidating || f.state == StateSubmitting {
		return false
	}
	f.state = StateValidating
	f.lastErr = nil
	return true
}

// reject records a validation error and returns straight to idle.
// Validation failures are not "failed" attempts; nothing was submitted.
func (f *Flow) reject(err error) {
	f.mu.Lock()
	f.state = StateIdle
	f.lastErr = err
	f.mu.Unlock()
}

// fail records the error and parks the flow in StateFailed.
func (f *Flow) fail(err error) {
	f.mu.Lock()
	f.state = StateFailed
	f.lastErr = err
	f.mu.Unlock()
}

// succeed re-arms the flow.
func (f *Flow) succeed() {
	f.mu.Lock()
	f.state = StateIdle
	f.lastErr = nil
	f.mu.Unlock()
}
