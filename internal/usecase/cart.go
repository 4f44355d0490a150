package usecase

import (
	"context"
	"log/slog"
	"sync"

	"beautyverse-storefront/internal/domain/cart"
	"beautyverse-storefront/internal/domain/catalog"
	"beautyverse-storefront/internal/pkg/errs"
	"beautyverse-storefront/internal/pkg/ident"
	"beautyverse-storefront/internal/pkg/kv"
)

// CartKey is where the whole line item list is persisted.
const CartKey = "beautyVerseCart"

type CartStore struct {
	storage kv.Storage
	logger  *slog.Logger

	mu   sync.Mutex
	cart *cart.Cart
}

// NewCartStore rehydrates from storage. Corrupt contents start an empty cart.
func NewCartStore(ctx context.Context, storage kv.Storage, logger *slog.Logger) (*CartStore, error) {
	var items []cart.LineItem
	if _, err := kv.GetJSON(ctx, storage, CartKey, &items); err != nil {
		if !errs.Is(err, errs.ErrCorruptState) {
			return nil, errs.Wrap(err, "load cart")
		}
		logger.Warn("discarding unreadable cart", "error", err.Error())
		items = nil
	}
	return &CartStore{storage: storage, logger: logger, cart: cart.Restore(items)}, nil
}

func (s *CartStore) Add(ctx context.Context, p catalog.Product) error {
	return s.mutate(ctx, func(c *cart.Cart) error { return c.Add(p) })
}

func (s *CartStore) Remove(ctx context.Context, id ident.ID) error {
	return s.mutate(ctx, func(c *cart.Cart) error {
		c.Remove(id)
		return nil
	})
}

func (s *CartStore) UpdateQuantity(ctx context.Context, id ident.ID, delta int) error {
	return s.mutate(ctx, func(c *cart.Cart) error {
		c.UpdateQuantity(id, delta)
		return nil
	})
}

func (s *CartStore) Clear(ctx context.Context) error {
	return s.mutate(ctx, func(c *cart.Cart) error {
		c.Clear()
		return nil
	})
}

func (s *CartStore) Items() []cart.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Items()
}

func (s *CartStore) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalItems()
}

func (s *CartStore) Subtotal() catalog.Amount {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Subtotal()
}

// mutate applies fn and writes the full list back. The in-memory cart keeps
// the change even if the write fails.
func (s *CartStore) mutate(ctx context.Context, fn func(*cart.Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.cart); err != nil {
		return err
	}
	if err := kv.SetJSON(ctx, s.storage, CartKey, s.cart.Items()); err != nil {
		s.logger.Error("failed to persist cart", "error", err.Error())
		return errs.Wrap(err, "save cart")
	}
	return nil
}
