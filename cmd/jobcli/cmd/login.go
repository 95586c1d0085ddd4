package cmd

import (
	"bufio"
	"fmt"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/opencareer/jobcli/internal/app"
)

var (
	loginUsername string
	loginPassword string
	loginGoogle   bool
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the bearer token",
	Long: `Sign in with username and password using the OAuth2 password grant.

The token is written to the token file (0600) and reused by every other
command until you log out. Missing flags are prompted for; the password
prompt does not echo.

With --google the federated login page opens in the browser instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flow, _, _, err := buildFlow()
		if err != nil {
			return err
		}

		if loginGoogle {
			if err := flow.OpenFederatedLogin(); err != nil {
				return fmt.Errorf("open browser: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "continue in the browser, then run: jobcli login")
			return nil
		}

		username := loginUsername
		if username == "" {
			username, err = promptLine(cmd, "username")
			if err != nil {
				return err
			}
		}
		password := loginPassword
		if password == "" {
			password, err = promptPassword(cmd)
			if err != nil {
				return err
			}
		}

		if err := flow.Login(cmd.Context(), app.Credentials{Username: username, Password: password}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "signed in as %s\n", flow.Session().DisplayName())
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "account username (prompted when omitted)")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "account password (prompted when omitted)")
	loginCmd.Flags().BoolVar(&loginGoogle, "google", false, "open the Google federated login page instead")
	rootCmd.AddCommand(loginCmd)
}

// promptLine reads one line from the command's stdin.
func promptLine(cmd *cobra.Command, label string) (string, error) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ", label)
	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		return "", fmt.Errorf("read %s: no input", label)
	}
	return strings.TrimSpace(scanner.Text()), nil
}

// promptPassword reads the password without echo when stdin is a terminal.
func promptPassword(cmd *cobra.Command) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), "password: ")
	if term.IsTerminal(int(syscall.Stdin)) {
		defer fmt.Fprintln(cmd.OutOrStdout())
		raw, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		return "", fmt.Errorf("read password: no input")
	}
	return strings.TrimSpace(scanner.Text()), nil
}
