// Package cart models the client-only shopping list and its derived totals.
package cart

import (
	"beautyverse-storefront/internal/domain/catalog"
	"beautyverse-storefront/internal/pkg/errs"
	"beautyverse-storefront/internal/pkg/ident"

	"github.com/jinzhu/copier"
)

const MinQuantity = 1

// LineItem is a product snapshot plus a quantity. The snapshot fields keep the
// backend's names so persisted carts round-trip with the product payload.
type LineItem struct {
	ID            ident.ID       `json:"id"`
	Name          string         `json:"name"`
	Price         catalog.Amount `json:"price"`
	DiscountPrice catalog.Amount `json:"discount_price,omitempty"`
	FinalPrice    catalog.Amount `json:"final_price,omitempty"`
	Category      string         `json:"category,omitempty"`
	ProductImage  string         `json:"product_image,omitempty"`
	Quantity      int            `json:"quantity"`
}

func NewLineItem(p catalog.Product) (LineItem, error) {
	if p.ID.IsZero() {
		return LineItem{}, errs.Validation("Product id is required")
	}
	var item LineItem
	if err := copier.Copy(&item, &p); err != nil {
		return LineItem{}, errs.Wrap(err, "failed to snapshot product")
	}
	if item.ProductImage == "" {
		item.ProductImage = p.ImageURL
	}
	item.Quantity = MinQuantity
	return item, nil
}

func (i LineItem) UnitPrice() catalog.Amount {
	return catalog.EffectivePrice(i.Price, i.DiscountPrice, i.FinalPrice)
}

func (i LineItem) LineTotal() catalog.Amount {
	return i.UnitPrice().Times(i.Quantity)
}

// Cart holds at most one line item per product id, in insertion order.
type Cart struct {
	items []LineItem
}

// Restore rebuilds a cart from persisted items, merging duplicate ids and
// lifting quantities below the floor.
func Restore(items []LineItem) *Cart {
	c := &Cart{}
	for _, it := range items {
		if it.ID.IsZero() {
			continue
		}
		if it.Quantity < MinQuantity {
			it.Quantity = MinQuantity
		}
		if idx := c.indexOf(it.ID); idx >= 0 {
			c.items[idx].Quantity += it.Quantity
			continue
		}
		c.items = append(c.items, it)
	}
	return c
}

func (c *Cart) indexOf(id ident.ID) int {
	for i := range c.items {
		if c.items[i].ID == id {
			return i
		}
	}
	return -1
}

// Add increments an existing line or appends a new one with quantity 1.
func (c *Cart) Add(p catalog.Product) error {
	if idx := c.indexOf(p.ID); idx >= 0 {
		c.items[idx].Quantity++
		return nil
	}
	item, err := NewLineItem(p)
	if err != nil {
		return err
	}
	c.items = append(c.items, item)
	return nil
}

// Remove reports whether a line was dropped.
func (c *Cart) Remove(id ident.ID) bool {
	idx := c.indexOf(id)
	if idx < 0 {
		return false
	}
	c.items = append(c.items[:idx], c.items[idx+1:]...)
	return true
}

// UpdateQuantity adjusts by delta and never goes below MinQuantity.
func (c *Cart) UpdateQuantity(id ident.ID, delta int) bool {
	idx := c.indexOf(id)
	if idx < 0 {
		return false
	}
	q := c.items[idx].Quantity + delta
	if q < MinQuantity {
		q = MinQuantity
	}
	c.items[idx].Quantity = q
	return true
}

func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) IsEmpty() bool { return len(c.items) == 0 }

func (c *Cart) TotalItems() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) Subtotal() catalog.Amount {
	var cents int64
	for _, it := range c.items {
		cents += it.LineTotal().Cents()
	}
	return catalog.FromCents(cents)
}
