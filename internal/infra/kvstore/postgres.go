package kvstore

import (
	"context"
	"errors"
	"log/slog"

	"beautyverse-storefront/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS storefront_state (
	state_key   TEXT PRIMARY KEY,
	state_value TEXT NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`

type PostgresStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPostgresStore(pool *pgxpool.Pool, logger *slog.Logger) *PostgresStore {
	return &PostgresStore{pool: pool, logger: logger}
}

// EnsureSchema creates the state table. Safe to call on every start.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, createTableSQL); err != nil {
		return infra.WrapStorageErr(s.logger, infra.KindSchema, "failed to create storefront_state", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.pool.QueryRow(ctx,
		`SELECT state_value FROM storefront_state WHERE state_key = $1`, key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, infra.WrapStorageErr(s.logger, infra.KindRead, "failed to read state", err)
	}
	return value, true, nil
}

func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO storefront_state (state_key, state_value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (state_key) DO UPDATE SET
			state_value = EXCLUDED.state_value,
			updated_at  = EXCLUDED.updated_at`,
		key, value,
	)
	if err != nil {
		return infra.WrapStorageErr(s.logger, infra.KindWrite, "failed to write state", err)
	}
	return nil
}

func (s *PostgresStore) Remove(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM storefront_state WHERE state_key = $1`, key); err != nil {
		return infra.WrapStorageErr(s.logger, infra.KindWrite, "failed to remove state", err)
	}
	return nil
}
