package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

// chdir is a stand-in for testing.T.Chdir (Go 1.24+) on older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})
}

func validConfig() Config {
	cfg := Config{
		Server: ServerConfig{BaseURL: "https://api.opencareer.dev"},
		OAuth:  OAuthConfig{ClientID: "id", ClientSecret: "secret"},
	}
	cfg.SetDefaults()
	return cfg
}

func TestSetDefaults(t *testing.T) {
	var cfg Config
	cfg.SetDefaults()

	if cfg.HTTP.Timeout != "15s" {
		t.Errorf("expected default timeout 15s, got %q", cfg.HTTP.Timeout)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("expected default log level warn, got %q", cfg.LogLevel)
	}
	if cfg.TokenPath == "" {
		t.Error("expected a default token path")
	}
	if !strings.Contains(cfg.TokenPath, ".jobcli") {
		t.Errorf("expected token path under .jobcli, got %q", cfg.TokenPath)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid config passes",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing base url",
			mutate:  func(c *Config) { c.Server.BaseURL = "" },
			wantErr: "server.base_url",
		},
		{
			name:    "base url without scheme",
			mutate:  func(c *Config) { c.Server.BaseURL = "api.opencareer.dev" },
			wantErr: "server.base_url",
		},
		{
			name:    "missing client id",
			mutate:  func(c *Config) { c.OAuth.ClientID = "" },
			wantErr: "oauth.client_id",
		},
		{
			name:    "missing client secret",
			mutate:  func(c *Config) { c.OAuth.ClientSecret = "" },
			wantErr: "oauth.client_secret",
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: "log_level",
		},
		{
			name:    "unparseable timeout",
			mutate:  func(c *Config) { c.HTTP.Timeout = "soon" },
			wantErr: "http.timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRequestTimeout(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Timeout = "3s"
	if got := cfg.RequestTimeout(); got != 3*time.Second {
		t.Errorf("expected 3s, got %v", got)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jobcli.yaml")
	contents := `
server:
  base_url: http://localhost:8000
oauth:
  client_id: abc
  client_secret: xyz
log_level: debug
`
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	viper.Reset()
	t.Cleanup(viper.Reset)
	InitViper(path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.BaseURL != "http://localhost:8000" {
		t.Errorf("unexpected base url: %q", cfg.Server.BaseURL)
	}
	if cfg.OAuth.ClientID != "abc" || cfg.OAuth.ClientSecret != "xyz" {
		t.Errorf("unexpected oauth config: %+v", cfg.OAuth)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %q", cfg.LogLevel)
	}
	// Defaults still apply to fields the file omits.
	if cfg.HTTP.Timeout != "15s" {
		t.Errorf("expected default timeout, got %q", cfg.HTTP.Timeout)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("JOBCLI_SERVER_BASE_URL", "https://staging.opencareer.dev")
	t.Setenv("JOBCLI_OAUTH_CLIENT_ID", "env-id")
	t.Setenv("JOBCLI_OAUTH_CLIENT_SECRET", "env-secret")

	// Empty dir so no jobcli.yaml is picked up from the working directory.
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	InitViper("")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.BaseURL != "https://staging.opencareer.dev" {
		t.Errorf("env override not applied, got %q", cfg.Server.BaseURL)
	}
	if cfg.OAuth.ClientID != "env-id" {
		t.Errorf("env override not applied to client id, got %q", cfg.OAuth.ClientID)
	}
}

func TestLoadMissingRequiredFieldsFails(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	InitViper("")

	if _, err := Load(); err == nil {
		t.Fatal("expected validation failure with no config at all")
	}
}

func TestStarterIsLoadable(t *testing.T) {
	data, err := Starter()
	if err != nil {
		t.Fatalf("starter: %v", err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "jobcli.yaml")
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("write starter: %v", err)
	}

	viper.Reset()
	t.Cleanup(viper.Reset)
	InitViper(path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("starter config should validate, got %v", err)
	}
	if cfg.Server.BaseURL == "" {
		t.Error("starter config missing base url")
	}
}
