package memcache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	mem "fooding/pkg/memcache"
)

const sweepInterval = 10 * time.Minute

var Module = fx.Provide(provideRevokedSessions)

// provideRevokedSessions also runs a background sweep of expired entries
// for the lifetime of the app.
func provideRevokedSessions(lc fx.Lifecycle, logger *zap.Logger) mem.RevocationStore {
	store := mem.NewRevokedSessions()
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ticker := time.NewTicker(sweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						if n := store.Sweep(); n > 0 {
							logger.Debug("swept revoked sessions", zap.Int("count", n))
						}
					case <-done:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(done)
			return nil
		},
	})
	return store
}
