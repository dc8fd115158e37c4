package cli

import (
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/landmarket/landmarket-cli/internal/core/authz"
	"github.com/landmarket/landmarket-cli/internal/core/domain"
)

func newWishlistCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "wishlist",
		Aliases: []string{"wl"},
		Short:   "Manage your favorite listings",
	}
	cmd.AddCommand(
		newWishlistListCmd(a),
		newWishlistToggleCmd(a),
		newWishlistSetCmd(a, "add", true),
		newWishlistSetCmd(a, "remove", false),
	)
	return cmd
}

// signedIn renders the sign-in hint instead of an error when the tier
// cannot use the wishlist. Restricted tiers get guidance, not failures.
func signedIn(a *app) bool {
	if authz.Classify(a.session.Current()).CanUseWishlist() {
		return true
	}
	a.printf("Sign in to use your wishlist. Run: landmarket login")
	return false
}

func newWishlistListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show your wishlist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !signedIn(a) {
				return nil
			}

			var lands []domain.Land
			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error { return a.wishlist.Load(ctx) })
			g.Go(func() error {
				var err error
				lands, err = a.lands.List(ctx)
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}

			byID := make(map[string]domain.Land, len(lands))
			for _, land := range lands {
				byID[land.ID] = land
			}

			entries := a.wishlist.Entries()
			shown := 0
			for _, e := range entries {
				if !e.Favorited {
					continue
				}
				if land, ok := byID[e.LandID]; ok {
					a.printf("%s", renderLandLine(land, true))
				} else {
					a.printf("* %s  (listing no longer available)", e.LandID)
				}
				shown++
			}
			if shown == 0 {
				a.printf("Your wishlist is empty.")
			}
			return nil
		},
	}
}

func newWishlistToggleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <listing-id>",
		Short: "Flip a listing in or out of your wishlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !signedIn(a) {
				return nil
			}
			if err := a.wishlist.Load(cmd.Context()); err != nil {
				return err
			}

			favorited, err := a.wishlist.Toggle(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if favorited {
				a.printf("Added %s to your wishlist.", args[0])
			} else {
				a.printf("Removed %s from your wishlist.", args[0])
			}
			return nil
		},
	}
}

// newWishlistSetCmd builds add/remove as idempotent forms of toggle: when
// the listing is already in the desired state nothing is sent.
func newWishlistSetCmd(a *app, verb string, want bool) *cobra.Command {
	short := "Add a listing to your wishlist"
	if !want {
		short = "Remove a listing from your wishlist"
	}

	return &cobra.Command{
		Use:   verb + " <listing-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !signedIn(a) {
				return nil
			}
			if err := a.wishlist.Load(cmd.Context()); err != nil {
				return err
			}

			landID := args[0]
			if a.wishlist.IsFavorited(landID) == want {
				a.printf("Nothing to do.")
				return nil
			}

			if _, err := a.wishlist.Toggle(cmd.Context(), landID); err != nil {
				return err
			}
			if want {
				a.printf("Added %s to your wishlist.", landID)
			} else {
				a.printf("Removed %s from your wishlist.", landID)
			}
			return nil
		},
	}
}
