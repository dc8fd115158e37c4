package cli

import (
	"github.com/spf13/cobra"

	"github.com/landmarket/landmarket-cli/internal/core/domain"
	"github.com/landmarket/landmarket-cli/internal/core/ports"
)

func newProfileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and edit your account",
	}
	cmd.AddCommand(newProfileShowCmd(a), newProfileUpdateCmd(a))
	return cmd
}

func newProfileShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show your account details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := a.session.Current()
			if !sess.Authenticated() {
				return domain.ErrAuthRequired
			}

			user, err := a.users.Get(cmd.Context(), sess.Token, sess.UserID)
			if err != nil {
				return err
			}
			printUser(a, user)
			return nil
		},
	}
}

func newProfileUpdateCmd(a *app) *cobra.Command {
	var in ports.UpdateUserInput

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update your account details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := a.session.Current()
			if !sess.Authenticated() {
				return domain.ErrAuthRequired
			}

			// Unset flags keep their current values; the backend expects the
			// full editable profile back.
			current, err := a.users.Get(cmd.Context(), sess.Token, sess.UserID)
			if err != nil {
				return err
			}
			fillFromCurrent(&in, current)

			if err := checkInput(updateProfileInput{Name: in.Name, Email: in.Email}); err != nil {
				return err
			}

			user, err := a.users.Update(cmd.Context(), sess.Token, sess.UserID, in)
			if err != nil {
				return err
			}
			a.printf("Profile updated.")
			printUser(a, user)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "display name")
	cmd.Flags().StringVar(&in.Email, "email", "", "account email")
	cmd.Flags().StringVar(&in.Address, "address", "", "postal address")
	cmd.Flags().StringVar(&in.PhoneNumber, "phone", "", "phone number")
	return cmd
}

func fillFromCurrent(in *ports.UpdateUserInput, current *domain.User) {
	if in.Name == "" {
		in.Name = current.Name
	}
	if in.Email == "" {
		in.Email = current.Email
	}
	if in.Address == "" {
		in.Address = current.Address
	}
	if in.PhoneNumber == "" {
		in.PhoneNumber = current.PhoneNumber
	}
}

func printUser(a *app, user *domain.User) {
	a.printf("ID:    %s", user.ID)
	a.printf("Name:  %s", user.Name)
	a.printf("Email: %s", user.Email)
	if user.Address != "" {
		a.printf("Address: %s", user.Address)
	}
	if user.PhoneNumber != "" {
		a.printf("Phone:   %s", user.PhoneNumber)
	}
	a.printf("Role:  %s", user.Role)
}
