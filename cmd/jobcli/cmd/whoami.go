package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		flow, _, _, err := buildFlow()
		if err != nil {
			return err
		}
		if err := flow.Rehydrate(cmd.Context()); err != nil {
			return err
		}
		user := flow.Session()
		if user == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "not signed in")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", user.DisplayName(), user.Username)
		if user.Email != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "email: %s\n", user.Email)
		}
		if user.Role != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "role: %s\n", user.Role)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
