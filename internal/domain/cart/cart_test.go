//go:build unit

package cart_test

import (
	"testing"

	"beautyverse-storefront/internal/domain/cart"
	"beautyverse-storefront/internal/domain/catalog"
	"beautyverse-storefront/internal/pkg/errs"
	"beautyverse-storefront/internal/pkg/ident"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id string, price, discount catalog.Amount) catalog.Product {
	return catalog.Product{ID: ident.ID(id), Name: "item " + id, Price: price, DiscountPrice: discount, Category: "Makeup"}
}

func TestCart(t *testing.T) {
	t.Run("first add appends one line with quantity 1", func(t *testing.T) {
		c := cart.Restore(nil)
		require.NoError(t, c.Add(product("1", 1000, 0)))

		items := c.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 1, items[0].Quantity)
		assert.Equal(t, "item 1", items[0].Name)
		assert.Equal(t, "Makeup", items[0].Category)
	})

	t.Run("repeat add increments the same line", func(t *testing.T) {
		c := cart.Restore(nil)
		require.NoError(t, c.Add(product("1", 1000, 0)))
		require.NoError(t, c.Add(product("1", 1000, 0)))

		items := c.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 2, items[0].Quantity)
	})

	t.Run("product without id is rejected", func(t *testing.T) {
		c := cart.Restore(nil)
		assert.True(t, errs.Is(c.Add(catalog.Product{Name: "ghost"}), errs.ErrValidation))
		assert.True(t, c.IsEmpty())
	})

	t.Run("quantity floors at one", func(t *testing.T) {
		c := cart.Restore(nil)
		require.NoError(t, c.Add(product("1", 1000, 0)))
		assert.True(t, c.UpdateQuantity("1", -100))
		assert.Equal(t, 1, c.Items()[0].Quantity)
		assert.True(t, c.UpdateQuantity("1", 4))
		assert.Equal(t, 5, c.Items()[0].Quantity)
		assert.False(t, c.UpdateQuantity("missing", 1))
	})

	t.Run("remove drops only the given line", func(t *testing.T) {
		c := cart.Restore(nil)
		require.NoError(t, c.Add(product("1", 1000, 0)))
		require.NoError(t, c.Add(product("2", 2000, 0)))
		assert.True(t, c.Remove("1"))
		assert.False(t, c.Remove("1"))

		items := c.Items()
		require.Len(t, items, 1)
		assert.Equal(t, "2", items[0].ID.String())
	})

	t.Run("totals use the effective price", func(t *testing.T) {
		c := cart.Restore(nil)
		require.NoError(t, c.Add(product("1", 1000, 0)))
		require.NoError(t, c.Add(product("1", 1000, 0)))
		require.NoError(t, c.Add(product("2", 2000, 1500)))

		assert.Equal(t, 3, c.TotalItems())
		assert.Equal(t, catalog.Amount(3500), c.Subtotal())
	})

	t.Run("subtotal of fractional prices has no float drift", func(t *testing.T) {
		c := cart.Restore([]cart.LineItem{
			{ID: "1", Price: 0.1, Quantity: 3},
			{ID: "2", Price: 0.2, Quantity: 1},
			{ID: "3", Price: 19.99, Quantity: 7},
		})
		assert.Equal(t, catalog.Amount(140.43), c.Subtotal())
		assert.Equal(t, int64(14043), c.Subtotal().Cents())
	})

	t.Run("clear empties the cart", func(t *testing.T) {
		c := cart.Restore(nil)
		require.NoError(t, c.Add(product("1", 1000, 0)))
		c.Clear()
		assert.True(t, c.IsEmpty())
		assert.Zero(t, c.Subtotal())
	})

	t.Run("restore merges duplicates and lifts bad quantities", func(t *testing.T) {
		c := cart.Restore([]cart.LineItem{
			{ID: "1", Price: 100, Quantity: 2},
			{ID: "1", Price: 100, Quantity: 1},
			{ID: "2", Price: 50, Quantity: 0},
			{Price: 10, Quantity: 3},
		})
		items := c.Items()
		require.Len(t, items, 2)
		assert.Equal(t, 3, items[0].Quantity)
		assert.Equal(t, 1, items[1].Quantity)
	})

	t.Run("items returns a copy", func(t *testing.T) {
		c := cart.Restore(nil)
		require.NoError(t, c.Add(product("1", 1000, 0)))
		items := c.Items()
		items[0].Quantity = 99
		assert.Equal(t, 1, c.Items()[0].Quantity)
	})
}

func TestNewLineItemFallsBackToImageURL(t *testing.T) {
	p := product("1", 1000, 0)
	p.ImageURL = "https://cdn.test/lipstick.png"

	item, err := cart.NewLineItem(p)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/lipstick.png", item.ProductImage)
}
