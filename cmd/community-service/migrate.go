package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/digital-house/community-service/internal/config"
	"github.com/digital-house/community-service/internal/observability"
	"github.com/digital-house/community-service/internal/persistence"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			cfg, logger, err := loadForMigrate()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck
			return persistence.RunMigrations(cfg.Postgres.DSN, logger)
		},
	})

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migrations",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if steps < 1 {
				return fmt.Errorf("--steps must be at least 1")
			}
			cfg, logger, err := loadForMigrate()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck
			return persistence.RollbackMigrations(cfg.Postgres.DSN, steps, logger)
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")
	cmd.AddCommand(down)

	return cmd
}

func loadForMigrate() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, logger, nil
}
