// Package config provides configuration for the jobcli client.
//
// Configuration is file-based (jobcli.yaml) with environment variable
// overrides under the JOBCLI_ prefix. The surface is deliberately small:
// the API base URL, the OAuth client credentials issued to this client,
// an HTTP timeout, the token file location, and the log level.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/opencareer/jobcli/internal/tokenstore"
)

// Config is the top-level configuration for jobcli.
type Config struct {
	// Server configures the API endpoint.
	Server ServerConfig `yaml:"server" mapstructure:"server"`

	// OAuth holds the client credentials for the password-grant exchange.
	// These identify the client application, not the user.
	OAuth OAuthConfig `yaml:"oauth" mapstructure:"oauth"`

	// HTTP configures the transport.
	HTTP HTTPConfig `yaml:"http" mapstructure:"http"`

	// TokenPath is where the bearer token is persisted.
	// Default: ~/.jobcli/token.json.
	TokenPath string `yaml:"token_path" mapstructure:"token_path"`

	// LogLevel controls logging verbosity: debug, info, warn, or error.
	// Default: "warn" (a CLI should be quiet unless asked).
	LogLevel string `yaml:"log_level" mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// ServerConfig configures the API endpoint.
type ServerConfig struct {
	// BaseURL is the API server address, e.g. "https://api.opencareer.dev".
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"required,http_url"`
}

// OAuthConfig holds the OAuth2 client credentials.
type OAuthConfig struct {
	// ClientID identifies this application to the identity provider.
	ClientID string `yaml:"client_id" mapstructure:"client_id" validate:"required"`

	// ClientSecret is the matching secret.
	ClientSecret string `yaml:"client_secret" mapstructure:"client_secret" validate:"required"`
}

// HTTPConfig configures the HTTP transport.
type HTTPConfig struct {
	// Timeout is the per-request timeout (e.g. "15s"). Default: "15s".
	// This is the only guard against a hung network call; there is no
	// retry and no cancellation beyond it.
	Timeout string `yaml:"timeout" mapstructure:"timeout"`
}

// SetDefaults applies default values for optional fields.
func (c *Config) SetDefaults() {
	if c.HTTP.Timeout == "" {
		c.HTTP.Timeout = "15s"
	}
	if c.TokenPath == "" {
		c.TokenPath = tokenstore.DefaultPath()
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
}

// Validate validates the configuration using struct tags plus the
// cross-field timeout parse check. Returns actionable error messages.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := v.Struct(c); err != nil {
		return formatValidationErrors(err)
	}

	if _, err := time.ParseDuration(c.HTTP.Timeout); err != nil {
		return fmt.Errorf("http.timeout: invalid duration %q", c.HTTP.Timeout)
	}

	return nil
}

// RequestTimeout returns the parsed HTTP timeout.
// Call Validate first; an unparseable value falls back to 15 seconds.
func (c *Config) RequestTimeout() time.Duration {
	d, err := time.ParseDuration(c.HTTP.Timeout)
	if err != nil {
		return 15 * time.Second
	}
	return d
}

// formatValidationErrors rewrites validator errors into messages that name
// the config key instead of the Go field path.
func formatValidationErrors(err error) error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	for _, fe := range errs {
		switch fe.Namespace() {
		case "Config.Server.BaseURL":
			return fmt.Errorf("server.base_url: required, must be an http(s) URL")
		case "Config.OAuth.ClientID":
			return fmt.Errorf("oauth.client_id: required (issued when the client app was registered)")
		case "Config.OAuth.ClientSecret":
			return fmt.Errorf("oauth.client_secret: required (issued when the client app was registered)")
		case "Config.LogLevel":
			return fmt.Errorf("log_level: must be one of debug, info, warn, error")
		}
	}
	return err
}

// Starter returns a YAML starter config for `jobcli config init`.
func Starter() ([]byte, error) {
	cfg := Config{
		Server: ServerConfig{BaseURL: "http://localhost:8000"},
		OAuth: OAuthConfig{
			ClientID:     "your-client-id",
			ClientSecret: "your-client-secret",
		},
	}
	cfg.SetDefaults()
	return yaml.Marshal(&cfg)
}
