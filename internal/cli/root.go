// Package cli implements the foodmart console commands.
package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/dev-mike-s/foodmart/internal/app"
	"github.com/dev-mike-s/foodmart/internal/config"
	"github.com/dev-mike-s/foodmart/pkg/logger"
)

// options holds the state shared by the subcommands
type options struct {
	fixtures string
	logLevel string

	now func() time.Time

	cfg *config.Config
	log *slog.Logger
	app *app.App
}

// NewRootCommand builds the foodmart command tree
func NewRootCommand() *cobra.Command {
	return newRootCommand(time.Now)
}

func newRootCommand(now func() time.Time) *cobra.Command {
	opts := &options{now: now}

	root := &cobra.Command{
		Use:   "foodmart",
		Short: "Restaurant recommendations, receipts and member profiles",
		Long: `foodmart filters a restaurant list by price, delivery time, distance and
opening hours, prices a product with shipping and tax, and prints member
profile cards.

Catalogs default to the built-in fixture lists; pass --fixtures with a
comma separated list of YAML files or URLs to replace them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&opts.fixtures, "fixtures", "", "comma separated fixture files or URLs (env FIXTURES)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error (env LOG_LEVEL)")

	root.AddCommand(
		newRecommendCommand(opts),
		newReceiptCommand(opts),
		newProfileCommand(opts),
		newServeCommand(opts),
	)

	return root
}

func (o *options) init(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("fixtures") {
		cfg.Catalog.Fixtures = o.fixtures
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = o.logLevel
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
	}

	o.cfg = cfg
	o.log = logger.NewWithWriter(cmd.ErrOrStderr(), cfg.LogLevel)

	a, err := app.New(cmd.Context(), cfg, o.log, o.now)
	if err != nil {
		return err
	}
	o.app = a
	return nil
}
