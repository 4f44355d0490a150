package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"beautyverse-storefront/internal/infra/db"
	"beautyverse-storefront/internal/infra/kvstore"
	"beautyverse-storefront/internal/pkg/config"
	"beautyverse-storefront/internal/pkg/kv"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewStorage,
	),
)

// NewStorage opens the key-value backend selected by STORAGE_DRIVER.
func NewStorage(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (kv.Storage, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		logger.Warn("using in-memory storage; client state is lost on restart")
		return kv.NewMemory(), nil

	case config.StorageRedis:
		client, err := kvstore.NewRedisClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
		return kvstore.NewRedisStore(client, logger), nil

	case config.StoragePostgres:
		pool, cleanup, err := db.Connect(cfg.Storage.DB)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				if cleanup != nil {
					cleanup()
				}
				return nil
			},
		})

		store := kvstore.NewPostgresStore(pool, logger)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return store, nil

	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.Storage.Driver)
	}
}
