package main

import (
	"cmp"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quoteday/internal/platform/config"
	"github.com/jsamuelsen/quoteday/internal/platform/logging"
)

// rootOptions holds flags shared by every command.
type rootOptions struct {
	profile string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "quoteday",
		Short:         "Quote of the day backend",
		Long:          "Serves the daily quote or campaign, the favorites ledger and engagement tracking.",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildTime),
		SilenceUsage:  true,
		SilenceErrors: true,
		// Running the bare binary serves, which keeps container entrypoints short.
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.profile, "profile", "p",
		cmp.Or(os.Getenv("APP_ENVIRONMENT"), "local"),
		"configuration profile, loads configs/<profile>.yaml")

	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newMigrateCommand(opts))

	return cmd
}

// loadConfig loads and validates configuration, then installs the logger
// as the process default.
func loadConfig(opts *rootOptions) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(opts.profile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.New(logging.ConfigFrom(cfg.Log, cfg.App))
	logging.SetDefault(logger)

	return cfg, logger, nil
}
