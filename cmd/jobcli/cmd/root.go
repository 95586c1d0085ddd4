// Package cmd provides the CLI commands for jobcli.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/opencareer/jobcli/internal/api"
	"github.com/opencareer/jobcli/internal/app"
	"github.com/opencareer/jobcli/internal/config"
	"github.com/opencareer/jobcli/internal/session"
	"github.com/opencareer/jobcli/internal/tokenstore"
)

var cfgFile string
var baseURLFlag string

var rootCmd = &cobra.Command{
	Use:   "jobcli",
	Short: "jobcli - terminal client for the OpenCareer job service",
	Long: `jobcli is a terminal client for the OpenCareer job-listing service.

It signs in with the OAuth2 password grant, keeps the bearer token in
~/.jobcli/token.json, and exposes the job board and your profile as
commands or as an interactive shell.

Quick start:
  1. Create a config file: jobcli config init
  2. Fill in server.base_url and the oauth client credentials
  3. Sign in: jobcli login

Configuration:
  Config is loaded from jobcli.yaml in the current directory or
  $HOME/.jobcli/. Environment variables override config values with
  the JOBCLI_ prefix. Example: JOBCLI_SERVER_BASE_URL=http://localhost:8000

Commands:
  login       Sign in with username and password (or open Google login)
  logout      Sign out and remove the stored token
  whoami      Show the signed-in user
  jobs        List job postings
  register    Create a new account
  shell       Interactive shell (login, jobs, profile screens)
  config      Manage the config file
  version     Print version information`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./jobcli.yaml or ~/.jobcli/jobcli.yaml)")
	rootCmd.PersistentFlags().StringVar(&baseURLFlag, "base-url", "", "API server base URL (overrides config)")
}

func initConfig() {
	config.InitViper(cfgFile)
}

// newLogger builds the CLI logger at the configured level.
func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "info":
		l = slog.LevelInfo
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

// buildFlow loads the config and wires the flow with its collaborators.
// Every command goes through here; nothing reaches for globals.
func buildFlow() (*app.Flow, *session.Store, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	if baseURLFlag != "" {
		cfg.Server.BaseURL = baseURLFlag
	}

	logger := newLogger(cfg.LogLevel)

	factory := api.NewFactory(
		api.WithBaseURL(cfg.Server.BaseURL),
		api.WithOAuthClient(cfg.OAuth.ClientID, cfg.OAuth.ClientSecret),
		api.WithTimeout(cfg.RequestTimeout()),
		api.WithLogger(logger),
	)
	tokens := tokenstore.NewFileStore(cfg.TokenPath, logger)
	sessions := session.NewStore()
	flow := app.NewFlow(factory, tokens, sessions, logger)

	return flow, sessions, logger, nil
}
