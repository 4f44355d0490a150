package kvstore

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"beautyverse-storefront/internal/infra"
	"beautyverse-storefront/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisClient connects and pings with a short deadline so a wrong address
// fails at startup rather than on the first request.
func NewRedisClient(cfg config.StorageConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func NewRedisStore(client *redis.Client, logger *slog.Logger) *RedisStore {
	return &RedisStore{client: client, logger: logger}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, infra.WrapStorageErr(s.logger, infra.KindRead, "failed to read state", err)
	}
	return value, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return infra.WrapStorageErr(s.logger, infra.KindWrite, "failed to write state", err)
	}
	return nil
}

func (s *RedisStore) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return infra.WrapStorageErr(s.logger, infra.KindWrite, "failed to remove state", err)
	}
	return nil
}
