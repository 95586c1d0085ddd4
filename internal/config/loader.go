package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// InitViper initializes Viper with the configuration file and environment
// variables. If configFile is empty, it searches for jobcli.yaml/.yml in the
// standard locations. The search requires an explicit YAML extension to avoid
// matching the binary itself.
func InitViper(configFile string) {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else if found := findConfigFile(); found != "" {
		viper.SetConfigFile(found)
	} else {
		// No config file found in any standard location.
		// Set name/type without search paths so ReadInConfig returns
		// ConfigFileNotFoundError (handled gracefully by Load).
		viper.SetConfigName("jobcli")
		viper.SetConfigType("yaml")
	}

	// Environment variable support: JOBCLI_SERVER_BASE_URL etc.
	viper.SetEnvPrefix("JOBCLI")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	bindNestedEnvKeys()
}

// findConfigFile searches standard locations for a jobcli config file with an
// explicit YAML extension (.yaml or .yml).
func findConfigFile() string {
	home, _ := os.UserHomeDir()
	paths := []string{
		".",
		filepath.Join(home, ".jobcli"),
	}
	for _, dir := range paths {
		for _, ext := range []string{".yaml", ".yml"} {
			path := filepath.Join(dir, "jobcli"+ext)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}

// DefaultConfigPath returns where `jobcli config init` writes its file.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "jobcli.yaml")
	}
	return filepath.Join(home, ".jobcli", "jobcli.yaml")
}

// bindNestedEnvKeys binds nested config keys for environment variable support.
// Example: JOBCLI_OAUTH_CLIENT_ID overrides oauth.client_id.
func bindNestedEnvKeys() {
	_ = viper.BindEnv("server.base_url")
	_ = viper.BindEnv("oauth.client_id")
	_ = viper.BindEnv("oauth.client_secret")
	_ = viper.BindEnv("http.timeout")
	_ = viper.BindEnv("token_path")
	_ = viper.BindEnv("log_level")
}

// Load reads the configuration file, applies environment overrides and
// defaults, validates, and returns the Config. A missing config file is not
// an error; the client can run on environment variables alone.
func Load() (*Config, error) {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.SetDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
