package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/landmarket/landmarket-cli/internal/core/authz"
	"github.com/landmarket/landmarket-cli/internal/core/domain"
	"github.com/landmarket/landmarket-cli/internal/core/ports"
)

func newAdminCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative operations (ADMIN role required)",
	}
	cmd.AddCommand(newAdminUserUpdateCmd(a))
	return cmd
}

func newAdminUserUpdateCmd(a *app) *cobra.Command {
	var (
		in   ports.UpdateUserInput
		role string
	)

	cmd := &cobra.Command{
		Use:   "user-update <user-id>",
		Short: "Edit any account, including its role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := a.session.Current()
			if !authz.Classify(sess).CanAdministerUsers() {
				a.printf("This command needs an administrator account.")
				return nil
			}

			targetID := args[0]
			current, err := a.users.Get(cmd.Context(), sess.Token, targetID)
			if err != nil {
				return err
			}
			fillFromCurrent(&in, current)

			newRole := current.Role
			if role != "" {
				newRole = domain.Role(role)
				if !newRole.Valid() {
					return &domain.ValidationError{
						Message: fmt.Sprintf("role must be %s or %s", domain.RoleAdmin, domain.RoleUser),
					}
				}
			}

			if err := checkInput(updateProfileInput{Name: in.Name, Email: in.Email}); err != nil {
				return err
			}

			user, err := a.users.AdminUpdate(cmd.Context(), sess.Token, targetID, in, newRole)
			if err != nil {
				return err
			}
			a.printf("Account updated.")
			printUser(a, user)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "display name")
	cmd.Flags().StringVar(&in.Email, "email", "", "account email")
	cmd.Flags().StringVar(&in.Address, "address", "", "postal address")
	cmd.Flags().StringVar(&in.PhoneNumber, "phone", "", "phone number")
	cmd.Flags().StringVar(&role, "role", "", "new role: ADMIN or USER")
	return cmd
}
