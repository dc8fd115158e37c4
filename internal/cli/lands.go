package cli

import (
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/landmarket/landmarket-cli/internal/core/authz"
	"github.com/landmarket/landmarket-cli/internal/core/domain"
	"github.com/landmarket/landmarket-cli/internal/core/ports"
)

func newLandsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lands",
		Short: "Browse and publish land listings",
	}
	cmd.AddCommand(newLandsListCmd(a), newLandsGetCmd(a), newLandsCreateCmd(a))
	return cmd
}

func newLandsListCmd(a *app) *cobra.Command {
	var mine bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the catalog (favorites marked when signed in)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := a.session.Current()

			// Catalog and wishlist are independent reads; fetch them together.
			var lands []domain.Land
			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				var err error
				lands, err = a.lands.List(ctx)
				return err
			})
			if sess.Authenticated() {
				g.Go(func() error { return a.wishlist.Load(ctx) })
			}
			if err := g.Wait(); err != nil {
				return err
			}

			for _, land := range lands {
				if mine && land.OwnerID != sess.UserID {
					continue
				}
				a.printf("%s", renderLandLine(land, a.wishlist.IsFavorited(land.ID)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&mine, "mine", false, "only listings owned by the signed-in user")
	return cmd
}

func newLandsGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <listing-id>",
		Short: "Show one listing in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			land, err := a.lands.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			a.printf("%s", land.Title)
			a.printf("Location: %s", land.Location())
			a.printf("Price:    $%s", strconv.FormatFloat(land.Price, 'f', -1, 64))
			if land.Size != "" {
				a.printf("Size:     %s", land.Size)
			}
			if land.Description != "" {
				a.printf("\n%s", land.Description)
			}
			return nil
		},
	}
}

func newLandsCreateCmd(a *app) *cobra.Command {
	var in ports.CreateLandInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publish a new listing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := a.session.Current()
			if !authz.Classify(sess).CanManageListings() {
				a.printf("Sign in to publish a listing. Run: landmarket login")
				return nil
			}

			if err := checkInput(createLandInput{
				Title:       in.Title,
				Description: in.Description,
				District:    in.District,
				City:        in.City,
				Price:       in.Price,
			}); err != nil {
				return err
			}

			in.OwnerID = sess.UserID
			land, err := a.lands.Create(cmd.Context(), sess.Token, in)
			if err != nil {
				return err
			}
			if land.ID != "" {
				a.printf("Listing published: %s (%s)", land.Title, land.ID)
			} else {
				a.printf("Listing published: %s", land.Title)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Title, "title", "", "listing title")
	cmd.Flags().StringVar(&in.Description, "description", "", "listing description")
	cmd.Flags().StringVar(&in.District, "district", "", "district")
	cmd.Flags().StringVar(&in.City, "city", "", "city")
	cmd.Flags().Float64Var(&in.Price, "price", 0, "asking price in USD")
	cmd.Flags().StringVar(&in.Size, "size", "", "lot size, e.g. 600m2")
	return cmd
}

func renderLandLine(land domain.Land, favorited bool) string {
	marker := " "
	if favorited {
		marker = "*"
	}
	return marker + " " + land.ID + "  " + land.Title + " (" + land.Location() + ") $" +
		strconv.FormatFloat(land.Price, 'f', -1, 64)
}
