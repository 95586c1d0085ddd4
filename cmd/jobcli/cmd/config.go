package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/opencareer/jobcli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	Long: `Write a starter config file to ~/.jobcli/jobcli.yaml.

The file holds placeholders for the server base URL and the OAuth client
credentials. Existing files are never overwritten.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = config.DefaultConfigPath()
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s", path)
		}

		starter, err := config.Starter()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
		if err := os.WriteFile(path, starter, 0o600); err != nil {
			return fmt.Errorf("write config file: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "server.base_url: %s\n", cfg.Server.BaseURL)
		fmt.Fprintf(cmd.OutOrStdout(), "oauth.client_id: %s\n", cfg.OAuth.ClientID)
		fmt.Fprintf(cmd.OutOrStdout(), "http.timeout: %s\n", cfg.HTTP.Timeout)
		fmt.Fprintf(cmd.OutOrStdout(), "token_path: %s\n", cfg.TokenPath)
		fmt.Fprintf(cmd.OutOrStdout(), "log_level: %s\n", cfg.LogLevel)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
