package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Set at build time via -ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "jobcli %s\n", Version)
		fmt.Fprintf(cmd.OutOrStdout(), "  commit:     %s\n", Commit)
		fmt.Fprintf(cmd.OutOrStdout(), "  built:      %s\n", BuildDate)
		fmt.Fprintf(cmd.OutOrStdout(), "  go version: %s\n", runtime.Version())
		fmt.Fprintf(cmd.OutOrStdout(), "  platform:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
