package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/admitly/admitctl/internal/authz"
	"github.com/admitly/admitctl/internal/errors"
	"github.com/admitly/admitctl/internal/state"
	"github.com/admitly/admitctl/internal/tui"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the CRM session",
	Long: `Manage the CRM session.

The session token and tenant identity are stored per API origin under
the admitctl directory and restored on every invocation.

Examples:
  admitctl auth login --email user@school.edu
  admitctl auth status
  admitctl auth whoami
  admitctl auth logout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the CRM",
	Long: `Sign in to the CRM with your email and password.

Without flags an interactive form collects the credentials. On success
the token and tenant identity are saved; a login without a tenant (a
platform operator account) clears any previously stored tenant.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp()
		a.bootstrap(cmd.Context())

		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if email == "" || password == "" {
			if a.cfg.NoInput || !tui.IsInteractive() {
				return errors.NewConfigInvalidError("--email and --password are required in non-interactive mode", nil)
			}
			creds, err := tui.LoginForm()
			if err != nil {
				return err
			}
			if email == "" {
				email = creds.Email
			}
			if password == "" {
				password = creds.Password
			}
		}

		user, err := a.manager.Login(cmd.Context(), email, password)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), a.render.Success(fmt.Sprintf("Logged in as %s (%s)", user.Email, user.Role)))
		if t := a.manager.Current().Tenant; t != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Tenant: %s\n", a.theme.Accent(t.Name))
		}
		return nil
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp()

		if a.store.Get(state.KeyToken) == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
			return nil
		}

		a.manager.Logout()
		fmt.Fprint(cmd.OutOrStdout(), a.render.Success("Logged out."))
		return nil
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the session status",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp()
		a.bootstrap(cmd.Context())

		sess := a.manager.Current()
		if !sess.Authenticated() {
			fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
			fmt.Fprintln(cmd.OutOrStdout(), "Use 'admitctl auth login' to sign in.")
			return nil
		}

		fmt.Fprint(cmd.OutOrStdout(), a.render.Success(fmt.Sprintf("Logged in as %s", sess.User.Email)))
		fmt.Fprintf(cmd.OutOrStdout(), "State file: %s\n", a.store.Path())
		return nil
	},
}

var authWhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated identity",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp()
		sess, err := a.requireSession(cmd.Context(), authz.Require(authz.AnyAuthenticated))
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), a.render.Session(sess))
		return nil
	},
}

func init() {
	authLoginCmd.Flags().String("email", "", "account email")
	authLoginCmd.Flags().String("password", "", "account password (prefer the interactive prompt)")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authWhoamiCmd)
	rootCmd.AddCommand(authCmd)
}
