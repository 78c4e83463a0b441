package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	authdomain "github.com/zerobuild-ai/zerobuild-backend/internal/auth/domain"
)

func newLoginCmd(opts *options) *cobra.Command {
	var role, username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print a session token",
		Long: `Authenticate against the backend and print a session token. Export it
as ZB_TOKEN or pass it with --token to other commands.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" {
				return fmt.Errorf("--username is required")
			}
			if password == "" {
				if !term.IsTerminal(os.Stdin.Fd()) {
					return fmt.Errorf("--password is required when stdin is not a terminal")
				}
				fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
				pw, err := term.ReadPassword(os.Stdin.Fd())
				if err != nil {
					return fmt.Errorf("error reading password: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr())
				password = string(pw)
			}

			var resp struct {
				Token string          `json:"token"`
				User  authdomain.User `json:"user"`
			}
			req := map[string]string{"role": role, "username": username, "password": password}
			if err := newAPIClient(opts).do(cmd.Context(), "POST", "/api/v1/auth/login", req, &resp); err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			w := cmd.OutOrStdout()
			color.New(color.FgGreen).Fprintf(w, "Logged in as %s (%s)\n", resp.User.Username, resp.User.Role)
			fmt.Fprintln(w, resp.Token)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", string(authdomain.RoleClient), "CLIENT or ADMIN")
	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password (prompted when omitted)")
	return cmd
}
