// Package cli wires the LandMarket services into cobra commands. Commands
// are thin: they gather input, consult the authorization gate for what to
// render, and delegate to the session and wishlist services. All command
// output goes to stdout; diagnostics go to the logger on stderr.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/landmarket/landmarket-cli/internal/core/ports"
	"github.com/landmarket/landmarket-cli/internal/core/service"
	"github.com/landmarket/landmarket-cli/internal/infrastructure/api"
	"github.com/landmarket/landmarket-cli/internal/infrastructure/config"
	"github.com/landmarket/landmarket-cli/internal/infrastructure/store"
	"github.com/landmarket/landmarket-cli/pkg/logger"
)

// app carries the wired services shared by every command.
type app struct {
	cfg *config.Config
	log zerolog.Logger
	out io.Writer

	session  ports.SessionController
	wishlist ports.WishlistSyncer
	lands    ports.LandAPI
	users    ports.UserAPI
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format+"\n", args...)
}

// newApp loads configuration and builds the full service graph.
func newApp() (*app, error) {
	// A .env file is a development convenience; its absence is normal.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logger.New(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})

	client := api.New(cfg.APIBaseURL, cfg.RequestTimeout, log)
	sessionSvc := service.NewSessionService(
		store.NewFileStore(cfg.CredentialsFile, log),
		api.NewAuthClient(client),
		log,
	)

	return &app{
		cfg:      cfg,
		log:      log,
		out:      os.Stdout,
		session:  sessionSvc,
		wishlist: service.NewWishlistService(sessionSvc, api.NewWishlistClient(client), log),
		lands:    api.NewLandClient(client),
		users:    api.NewUserClient(client),
	}, nil
}

func newRootCmd(a *app) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "landmarket",
		Short:         "Command-line client for the LandMarket marketplace",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			a.session.Initialize()
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newLandsCmd(a),
		newWishlistCmd(a),
		newProfileCmd(a),
		newAdminCmd(a),
	)
	return root
}

// Execute builds the app, runs the invoked command and exits non-zero on
// error.
func Execute() {
	a, err := newApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := newRootCmd(a).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, renderError(err))
		os.Exit(1)
	}
}
