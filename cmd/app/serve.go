package main

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"fooding/cmd/fx/account_fx"
	"fooding/cmd/fx/config_fx"
	"fooding/cmd/fx/controllers_fx"
	"fooding/cmd/fx/db_fx"
	"fooding/cmd/fx/fdc_fx"
	"fooding/cmd/fx/logger_fx"
	"fooding/cmd/fx/memcache_fx"
	"fooding/cmd/fx/mongo_fx"
	"fooding/cmd/fx/pantry_fx"
	"fooding/cmd/fx/recipe_fx"
	"fooding/cmd/fx/search_fx"
	"fooding/internal/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := newApp()
		if err := app.Err(); err != nil {
			return err
		}
		app.Run()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func newApp() *fx.App {
	return fx.New(
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		mongo_fx.Module,
		fdc_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		pantry_fx.Module,
		search_fx.Module,
		recipe_fx.Module,
		controllers_fx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
