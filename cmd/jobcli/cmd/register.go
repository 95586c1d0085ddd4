package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencareer/jobcli/internal/api"
)

var (
	registerUsername  string
	registerPassword  string
	registerEmail     string
	registerFirstName string
	registerLastName  string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long: `Create a new account on the server.

Missing username and password are prompted for. Registration does not
sign you in; run "jobcli login" afterwards.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flow, _, _, err := buildFlow()
		if err != nil {
			return err
		}

		username := registerUsername
		if username == "" {
			username, err = promptLine(cmd, "username")
			if err != nil {
				return err
			}
		}
		password := registerPassword
		if password == "" {
			password, err = promptPassword(cmd)
			if err != nil {
				return err
			}
		}

		user, err := flow.Register(cmd.Context(), api.RegisterInput{
			Username:  username,
			Password:  password,
			Email:     registerEmail,
			FirstName: registerFirstName,
			LastName:  registerLastName,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "account %s created, sign in with: jobcli login\n", user.Username)
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVarP(&registerUsername, "username", "u", "", "account username (prompted when omitted)")
	registerCmd.Flags().StringVarP(&registerPassword, "password", "p", "", "account password (prompted when omitted)")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "account email")
	registerCmd.Flags().StringVar(&registerFirstName, "first-name", "", "first name")
	registerCmd.Flags().StringVar(&registerLastName, "last-name", "", "last name")
	rootCmd.AddCommand(registerCmd)
}
