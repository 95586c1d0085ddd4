package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/opencareer/jobcli/internal/shell"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive shell",
	Long: `Run the interactive shell.

The shell mirrors the app's screens: a sign-in screen while logged out,
and the jobs and profile tabs once a session exists. A stored token is
picked up on startup so an earlier login survives the restart.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flow, sessions, logger, err := buildFlow()
		if err != nil {
			return err
		}

		// Restore the session from the stored token before the first render.
		// A dead token is cleared; a network failure just starts logged out.
		if err := flow.Rehydrate(cmd.Context()); err != nil {
			logger.Warn("session restore failed, starting logged out", "error", err)
		}

		sh := shell.New(flow, sessions, os.Stdin, cmd.OutOrStdout(), logger)
		return sh.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
