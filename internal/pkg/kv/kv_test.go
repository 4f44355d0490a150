//go:build unit

package kv_test

import (
	"context"
	"testing"

	"beautyverse-storefront/internal/pkg/errs"
	"beautyverse-storefront/internal/pkg/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

func TestJSONRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()

	require.NoError(t, kv.SetJSON(ctx, store, "cart", []item{{ID: "1", Quantity: 2}}))

	var got []item
	ok, err := kv.GetJSON(ctx, store, "cart", &got)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []item{{ID: "1", Quantity: 2}}, got)
}

func TestGetJSON(t *testing.T) {
	ctx := context.Background()

	t.Run("absent key leaves target untouched", func(t *testing.T) {
		store := kv.NewMemory()
		got := []item{{ID: "keep"}}
		ok, err := kv.GetJSON(ctx, store, "missing", &got)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, []item{{ID: "keep"}}, got)
	})

	t.Run("corrupt value is marked", func(t *testing.T) {
		store := kv.NewMemory()
		require.NoError(t, store.Set(ctx, "cart", "{not json"))
		var got []item
		ok, err := kv.GetJSON(ctx, store, "cart", &got)
		assert.False(t, ok)
		require.True(t, errs.Is(err, errs.ErrCorruptState), err)
	})
}

func TestScoped(t *testing.T) {
	ctx := context.Background()
	shared := kv.NewMemory()
	alice := kv.NewScoped(shared, kv.ClientPrefix("a"))
	bob := kv.NewScoped(shared, kv.ClientPrefix("b"))

	require.NoError(t, alice.Set(ctx, "access_token", "tok-a"))
	require.NoError(t, shared.Set(ctx, "global", "g"))

	_, ok, err := bob.Get(ctx, "access_token")
	require.NoError(t, err)
	assert.False(t, ok, "scopes must not leak into each other")

	v, ok, err := shared.Get(ctx, "client:a:access_token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok-a", v)

	require.NoError(t, kv.RemoveAll(ctx, alice, "access_token", "never_set"))
	assert.Equal(t, 1, shared.Len())
}
