//go:build unit

package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"beautyverse-storefront/internal/domain/booking"
	"beautyverse-storefront/internal/domain/catalog"
	"beautyverse-storefront/internal/domain/identity"
	"beautyverse-storefront/internal/pkg/config"
	"beautyverse-storefront/internal/pkg/errs"
	"beautyverse-storefront/internal/pkg/kv"
	"beautyverse-storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorefrontFactory(t *testing.T) {
	ctx := context.Background()
	global := kv.NewMemory()
	cfg := config.NewTestConfig()
	cfg.Booking.Mode = config.BookingLocal
	factory := usecase.NewStorefrontFactory(global, http.DefaultClient, cfg, discardLogger())

	t.Run("client id is required", func(t *testing.T) {
		_, err := factory.Open(ctx, " ")
		assert.True(t, errs.Is(err, errs.ErrValidation), err)
	})

	t.Run("clients do not see each other's state", func(t *testing.T) {
		require.NoError(t, global.Set(ctx, kv.ClientPrefix("a")+identity.AccessTokenKey, "tok-a"))
		require.NoError(t, global.Set(ctx, kv.ClientPrefix("a")+identity.UsernameKey, "aline"))

		a, err := factory.Open(ctx, "a")
		require.NoError(t, err)
		b, err := factory.Open(ctx, "b")
		require.NoError(t, err)

		assert.True(t, a.Session.IsAuthenticated())
		assert.False(t, a.Session.Loading())
		assert.False(t, b.Session.IsAuthenticated())

		require.NoError(t, a.Cart.Add(ctx, catalog.Product{ID: "1", Price: 100}))
		assert.Equal(t, 1, a.Cart.TotalItems())
		assert.Zero(t, b.Cart.TotalItems())

		reopened, err := factory.Open(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, 1, reopened.Cart.TotalItems())
	})

	t.Run("unreadable persisted state is discarded", func(t *testing.T) {
		require.NoError(t, global.Set(ctx, kv.ClientPrefix("e")+usecase.CartKey, "{not json"))
		require.NoError(t, global.Set(ctx, kv.ClientPrefix("e")+identity.AccessTokenKey, "tok"))
		require.NoError(t, global.Set(ctx, kv.ClientPrefix("e")+identity.UsernameKey, "eve"))
		require.NoError(t, global.Set(ctx, kv.ClientPrefix("e")+booking.StorageKey("eve"), "[broken"))

		sf, err := factory.Open(ctx, "e")
		require.NoError(t, err)
		assert.Zero(t, sf.Cart.TotalItems())

		list, err := sf.Bookings.Fetch(ctx)
		require.NoError(t, err)
		assert.Empty(t, list.Items)
	})

	t.Run("the slot registry is shared", func(t *testing.T) {
		for _, id := range []string{"c", "d"} {
			require.NoError(t, global.Set(ctx, kv.ClientPrefix(id)+identity.AccessTokenKey, "tok"))
			require.NoError(t, global.Set(ctx, kv.ClientPrefix(id)+identity.UsernameKey, "user-"+id))
		}
		c, err := factory.Open(ctx, "c")
		require.NoError(t, err)
		d, err := factory.Open(ctx, "d")
		require.NoError(t, err)

		draft := booking.Draft{ArtistID: "7", Date: "2026-10-20", Time: "10:00"}
		_, err = c.Bookings.Create(ctx, draft)
		require.NoError(t, err)

		_, err = d.Bookings.Create(ctx, draft)
		assert.True(t, errs.Is(err, booking.ErrSlotReserved), err)

		raw, ok, err := global.Get(ctx, booking.RegistryKey)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Contains(t, raw, `"artistId":"7"`)
	})
}
