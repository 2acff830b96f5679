package mongo_fx

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"fooding/internal/config"
	"fooding/internal/infra"
)

var Module = fx.Provide(
	provideClient,
	provideDatabase)

func provideClient(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := infra.InitMongo(ctx, cfg.Mongo.URI)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := client.Disconnect(ctx); err != nil {
				logger.Warn("error disconnecting mongo", zap.Error(err))
				return err
			}
			logger.Info("mongo connection closed")
			return nil
		},
	})
	return client, nil
}

func provideDatabase(client *mongo.Client, cfg config.Config) *mongo.Database {
	return client.Database(cfg.Mongo.Database)
}
