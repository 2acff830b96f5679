package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fooding/cmd/fx/logger_fx"
	"fooding/internal/config"
	"fooding/internal/infra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the Postgres schema and Mongo indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := logger_fx.New("info")
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		dsn, err := config.LoadDatabase()
		if err != nil {
			return err
		}
		db, err := infra.InitPostgresql(dsn)
		if err != nil {
			return err
		}
		defer infra.ClosePostgresql(db, logger)

		if err := infra.MigratePostgresql(db); err != nil {
			return err
		}
		logger.Info("postgres schema up to date")

		mcfg, ok := config.LoadMongo()
		if !ok {
			logger.Warn("MONGO_URI not set, skipping food record indexes")
			return nil
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		client, err := infra.InitMongo(ctx, mcfg.URI)
		if err != nil {
			return err
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		if err := infra.EnsureMongoIndexes(ctx, client.Database(mcfg.Database)); err != nil {
			return fmt.Errorf("mongo indexes: %w", err)
		}
		logger.Info("mongo indexes ensured", zap.String("database", mcfg.Database))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
