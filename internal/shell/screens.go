package shell

import (
	"context"
	"fmt"

	"github.com/opencareer/jobcli/internal/api"
	"github.com/opencareer/jobcli/internal/app"
)

// render paints the active screen's header and command hints.
func (s *Shell) render() {
	switch s.active {
	case ScreenLogin:
		fmt.Fprintln(s.out, "-- sign in --  (login | google | register | quit)")
	case ScreenHome:
		fmt.Fprintln(s.out, "-- jobs --  (list | search <q> | next | profile | quit)")
	case ScreenProfile:
		user := s.sessions.Current()
		if user != nil {
			fmt.Fprintf(s.out, "-- %s --  (whoami | logout | home | quit)\n", user.DisplayName())
		}
	}
}

// handleLogin handles commands on the unauthenticated screen.
func (s *Shell) handleLogin(ctx context.Context, cmd, rest string) error {
	switch cmd {
	case "login":
		username, err := s.prompt("username")
		if err != nil {
			return err
		}
		fmt.Fprint(s.out, "password: ")
		password, err := s.readPassword()
		if err != nil {
			return err
		}
		if err := s.flow.Login(ctx, app.Credentials{Username: username, Password: password}); err != nil {
			return err
		}
		user := s.sessions.Current()
		fmt.Fprintf(s.out, "welcome, %s\n", user.DisplayName())
		return nil

	case "google":
		if err := s.flow.OpenFederatedLogin(); err != nil {
			return err
		}
		// Tokens issued in the browser never reach this process; finishing
		// the federated flow requires a password login afterwards.
		fmt.Fprintln(s.out, "continue in the browser")
		return nil

	case "register":
		return s.register(ctx)

	default:
		fmt.Fprintf(s.out, "unknown command %q\n", cmd)
		return nil
	}
}

// handleHome handles commands on the jobs tab.
func (s *Shell) handleHome(ctx context.Context, cmd, rest string) error {
	switch cmd {
	case "list":
		s.query, s.page = "", 1
		return s.listJobs(ctx)
	case "search":
		s.query, s.page = rest, 1
		return s.listJobs(ctx)
	case "next":
		if s.page == 0 {
			s.page = 1
		}
		s.page++
		return s.listJobs(ctx)
	case "profile":
		return s.switchTab(ScreenProfile)
	default:
		fmt.Fprintf(s.out, "unknown command %q\n", cmd)
		return nil
	}
}

// handleProfile handles commands on the profile tab.
func (s *Shell) handleProfile(ctx context.Context, cmd string) error {
	switch cmd {
	case "whoami":
		user := s.sessions.Current()
		if user == nil {
			return nil
		}
		fmt.Fprintf(s.out, "%s (%s)\n", user.DisplayName(), user.Username)
		if user.Email != "" {
			fmt.Fprintf(s.out, "email: %s\n", user.Email)
		}
		if user.Role != "" {
			fmt.Fprintf(s.out, "role: %s\n", user.Role)
		}
		return nil
	case "logout":
		// The projection flips the stack back to the login screen on its
		// own once the session clears.
		return s.flow.Logout(ctx)
	case "home":
		return s.switchTab(ScreenHome)
	default:
		fmt.Fprintf(s.out, "unknown command %q\n", cmd)
		return nil
	}
}

// listJobs fetches and prints the current jobs page.
func (s *Shell) listJobs(ctx context.Context) error {
	page, err := s.flow.Jobs(ctx, s.query, s.page)
	if err != nil {
		return err
	}
	if len(page.Results) == 0 {
		fmt.Fprintln(s.out, "no jobs found")
		return nil
	}
	for _, job := range page.Results {
		line := fmt.Sprintf("#%d %s", job.ID, job.Title)
		if job.Company != "" {
			line += " @ " + job.Company
		}
		if job.Location != "" {
			line += " (" + job.Location + ")"
		}
		fmt.Fprintln(s.out, line)
	}
	fmt.Fprintf(s.out, "%d total\n", page.Count)
	return nil
}

// register collects a new account's fields and submits them.
func (s *Shell) register(ctx context.Context) error {
	username, err := s.prompt("username")
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, "password: ")
	password, err := s.readPassword()
	if err != nil {
		return err
	}
	email, err := s.prompt("email")
	if err != nil {
		return err
	}

	user, err := s.flow.Register(ctx, api.RegisterInput{
		Username: username,
		Password: password,
		Email:    email,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "account %s created, sign in to continue\n", user.Username)
	return nil
}
