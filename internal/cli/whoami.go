package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/landmarket/landmarket-cli/internal/core/authz"
	"github.com/landmarket/landmarket-cli/internal/core/service"
)

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the currently signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := a.session.Current()
			tier := authz.Classify(sess)
			if tier == authz.TierAnonymous {
				a.printf("Not signed in. Run: landmarket login")
				return nil
			}

			a.printf("User ID: %s", sess.UserID)
			a.printf("Role:    %s", sess.Role)
			a.printf("Tier:    %s", tier)

			// Best effort: the token may be opaque, and the profile endpoint
			// may be down. Neither failure makes whoami fail.
			if info, err := service.InspectToken(sess.Token); err == nil && !info.ExpiresAt.IsZero() {
				if info.Expired() {
					a.printf("Token:   expired %s (sign in again)", info.ExpiresAt.Format(time.RFC1123))
				} else {
					a.printf("Token:   valid until %s", info.ExpiresAt.Format(time.RFC1123))
				}
			}

			if user, err := a.users.Get(cmd.Context(), sess.Token, sess.UserID); err == nil {
				a.printf("Name:    %s", user.Name)
				a.printf("Email:   %s", user.Email)
			} else {
				a.log.Debug().Err(err).Msg("profile lookup failed for whoami")
			}
			return nil
		},
	}
}
