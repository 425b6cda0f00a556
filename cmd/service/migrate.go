package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quoteday/internal/adapters/storage"
)

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig(opts)
			if err != nil {
				return err
			}

			db, err := storage.Open(cfg.Database, logger)
			if err != nil {
				return err
			}
			defer func() { _ = storage.Close(db) }()

			if err := storage.Migrate(cmd.Context(), db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}

			logger.Info("schema migrated", slog.String("driver", cfg.Database.Driver))

			return nil
		},
	}
}
