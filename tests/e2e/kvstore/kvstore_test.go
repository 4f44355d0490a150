//go:build e2e

package kvstore_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"beautyverse-storefront/internal/infra/db"
	"beautyverse-storefront/internal/infra/kvstore"
	"beautyverse-storefront/internal/pkg/kv"
	"beautyverse-storefront/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type storageSuite struct {
	suite.Suite
	ctx   context.Context
	store kv.Storage
	open  func(t *testing.T) kv.Storage
}

func (s *storageSuite) SetupSuite() {
	s.ctx = context.Background()
	s.store = s.open(s.T())
}

func TestRedisStorage(t *testing.T) {
	suite.Run(t, &storageSuite{open: func(t *testing.T) kv.Storage {
		cfg := e2e.RedisStorageConfig(t)
		client, err := kvstore.NewRedisClient(cfg)
		require.NoError(t, err)
		t.Cleanup(func() { _ = client.Close() })
		return kvstore.NewRedisStore(client, discardLogger())
	}})
}

func TestPostgresStorage(t *testing.T) {
	suite.Run(t, &storageSuite{open: func(t *testing.T) kv.Storage {
		cfg := e2e.PostgresStorageConfig(t)
		pool, cleanup, err := db.Connect(cfg.DB)
		require.NoError(t, err)
		t.Cleanup(cleanup)

		store := kvstore.NewPostgresStore(pool, discardLogger())
		require.NoError(t, store.EnsureSchema(context.Background()))
		require.NoError(t, store.EnsureSchema(context.Background()), "schema setup must be repeatable")
		return store
	}})
}

func (s *storageSuite) TestGetSetRemove() {
	s.Run("absent key", func() {
		v, ok, err := s.store.Get(s.ctx, "missing")
		s.Require().NoError(err)
		s.False(ok)
		s.Empty(v)
	})

	s.Run("set then get", func() {
		s.Require().NoError(s.store.Set(s.ctx, "cart", `[{"id":"1"}]`))
		v, ok, err := s.store.Get(s.ctx, "cart")
		s.Require().NoError(err)
		s.True(ok)
		s.Equal(`[{"id":"1"}]`, v)
	})

	s.Run("set overwrites", func() {
		s.Require().NoError(s.store.Set(s.ctx, "user", "aline"))
		s.Require().NoError(s.store.Set(s.ctx, "user", "boss"))
		v, _, err := s.store.Get(s.ctx, "user")
		s.Require().NoError(err)
		s.Equal("boss", v)
	})

	s.Run("remove is idempotent", func() {
		s.Require().NoError(s.store.Set(s.ctx, "access_token", "tok"))
		s.Require().NoError(s.store.Remove(s.ctx, "access_token"))
		s.Require().NoError(s.store.Remove(s.ctx, "access_token"))
		_, ok, err := s.store.Get(s.ctx, "access_token")
		s.Require().NoError(err)
		s.False(ok)
	})
}

func (s *storageSuite) TestScopedClients() {
	alice := kv.NewScoped(s.store, kv.ClientPrefix("alice"))
	bob := kv.NewScoped(s.store, kv.ClientPrefix("bob"))

	s.Require().NoError(alice.Set(s.ctx, "access_token", "tok-a"))

	_, ok, err := bob.Get(s.ctx, "access_token")
	s.Require().NoError(err)
	s.False(ok)

	v, ok, err := s.store.Get(s.ctx, "client:alice:access_token")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("tok-a", v)

	s.Require().NoError(kv.RemoveAll(s.ctx, alice, "access_token"))
	_, ok, err = alice.Get(s.ctx, "access_token")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *storageSuite) TestJSONValues() {
	type line struct {
		ID       string `json:"id"`
		Quantity int    `json:"quantity"`
	}
	want := []line{{ID: "1", Quantity: 2}, {ID: "3", Quantity: 1}}
	s.Require().NoError(kv.SetJSON(s.ctx, s.store, "client:json:cart", want))

	var got []line
	ok, err := kv.GetJSON(s.ctx, s.store, "client:json:cart", &got)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(want, got)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
