package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and remove the stored token",
	Long: `Remove the stored bearer token and end the session.

The token file is deleted first; the session is only torn down once the
removal succeeds. Logging out while already signed out is a no-op.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flow, _, _, err := buildFlow()
		if err != nil {
			return err
		}
		if err := flow.Logout(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "signed out")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
