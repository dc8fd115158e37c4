package cli

import (
	"github.com/spf13/cobra"
)

func newLoginCmd(a *app) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to LandMarket",
		Long: "Sign in with your LandMarket account. The session token is stored " +
			"locally and reused until you log out.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if email == "" {
				if email, err = prompt("Email", true); err != nil {
					return err
				}
			}
			password, err := prompt("Password", false)
			if err != nil {
				return err
			}

			if err := checkInput(loginInput{Email: email, Password: password}); err != nil {
				return err
			}

			if err := a.session.Login(cmd.Context(), email, password); err != nil {
				return err
			}

			sess := a.session.Current()
			a.printf("Signed in as %s (%s).", sess.UserID, sess.Role)
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email (prompted when omitted)")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.session.Logout()
			a.printf("Signed out.")
			return nil
		},
	}
}
