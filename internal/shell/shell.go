package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/opencareer/jobcli/internal/app"
	"github.com/opencareer/jobcli/internal/session"
)

// Shell is the interactive terminal loop. It owns no session state: it reads
// the current session from the store and re-projects the screen stack after
// every dispatch.
type Shell struct {
	flow     *app.Flow
	sessions *session.Store
	in       *bufio.Scanner
	out      io.Writer
	logger   *slog.Logger

	// readPassword is swapped in tests; defaults to a no-echo terminal read.
	readPassword func() (string, error)

	active ScreenID
	page   int
	query  string
}

// New creates a Shell reading commands from in and rendering to out.
func New(flow *app.Flow, sessions *session.Store, in io.Reader, out io.Writer, logger *slog.Logger) *Shell {
	s := &Shell{
		flow:     flow,
		sessions: sessions,
		in:       bufio.NewScanner(in),
		out:      out,
		logger:   logger,
	}
	s.readPassword = s.readPasswordTerminal
	return s
}

// Run drives the shell until the input ends or the user quits. The screen
// stack follows the session: a successful login lands on home, a logout
// falls back to the login screen, with no navigation calls in between.
func (s *Shell) Run(ctx context.Context) error {
	cancel := s.sessions.Subscribe(func(sess session.Session) {
		s.active = Project(sess).Active()
	})
	defer cancel()

	s.active = Project(s.sessions.Current()).Active()

	for {
		s.render()
		fmt.Fprintf(s.out, "%s> ", s.active)
		if !s.in.Scan() {
			return s.in.Err()
		}
		line := strings.TrimSpace(s.in.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}
		if err := s.handle(ctx, line); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			// Flow errors were already logged; show the generic failure
			// line and keep the shell alive.
			fmt.Fprintf(s.out, "%s\n", userMessage(err))
		}
	}
}

var errQuit = errors.New("quit")

// handle routes one command line on the active screen.
func (s *Shell) handle(ctx context.Context, line string) error {
	cmd, rest, _ := strings.Cut(line, " ")

	switch s.active {
	case ScreenLogin:
		return s.handleLogin(ctx, cmd, rest)
	case ScreenHome:
		return s.handleHome(ctx, cmd, rest)
	case ScreenProfile:
		return s.handleProfile(ctx, cmd)
	default:
		return fmt.Errorf("unknown screen %q", s.active)
	}
}

// switchTab moves between the authenticated tabs. The target must be
// reachable in the projected stack.
func (s *Shell) switchTab(id ScreenID) error {
	if !Project(s.sessions.Current()).Contains(id) {
		return fmt.Errorf("screen %q not reachable", id)
	}
	s.active = id
	return nil
}

// userMessage maps an error onto the single line shown to the user.
// Validation errors carry their own message; everything else collapses to a
// generic failure line (the details are in the log, not the screen).
func userMessage(err error) string {
	var verr *app.ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	return "sign-in service unavailable, try again"
}

// readPasswordTerminal reads a password without echo when stdin is a
// terminal, falling back to a plain line read otherwise.
func (s *Shell) readPasswordTerminal() (string, error) {
	if term.IsTerminal(int(syscall.Stdin)) {
		defer fmt.Fprintln(s.out)
		raw, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
	if !s.in.Scan() {
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// prompt prints a label and reads one line.
func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprintf(s.out, "%s: ", label)
	if !s.in.Scan() {
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}
