package usecase

import (
	"context"
	"log/slog"
	"sync"

	"beautyverse-storefront/internal/domain/booking"
	"beautyverse-storefront/internal/pkg/errs"
	"beautyverse-storefront/internal/pkg/kv"
)

// SlotRegistry is the process-wide reservation list shared by every client.
// Each operation is a read-modify-write of one key under a single mutex.
type SlotRegistry struct {
	storage kv.Storage
	logger  *slog.Logger
	mu      sync.Mutex
}

func NewSlotRegistry(storage kv.Storage, logger *slog.Logger) *SlotRegistry {
	return &SlotRegistry{storage: storage, logger: logger}
}

func (r *SlotRegistry) load(ctx context.Context) (booking.Registry, error) {
	var reg booking.Registry
	if _, err := kv.GetJSON(ctx, r.storage, booking.RegistryKey, &reg); err != nil {
		if errs.Is(err, errs.ErrCorruptState) {
			r.logger.Warn("resetting unreadable slot registry", "error", err.Error())
			return booking.Registry{}, nil
		}
		return nil, errs.Wrap(err, "load slot registry")
	}
	return reg, nil
}

func (r *SlotRegistry) save(ctx context.Context, reg booking.Registry) error {
	return errs.Wrap(kv.SetJSON(ctx, r.storage, booking.RegistryKey, reg), "save slot registry")
}

func (r *SlotRegistry) Snapshot(ctx context.Context) (booking.Registry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

func (r *SlotRegistry) Contains(ctx context.Context, s booking.Slot) (bool, error) {
	reg, err := r.Snapshot(ctx)
	if err != nil {
		return false, err
	}
	return reg.Contains(s), nil
}

// Reserve fails with booking.ErrSlotReserved when s is taken.
func (r *SlotRegistry) Reserve(ctx context.Context, s booking.Slot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	reg, err := r.load(ctx)
	if err != nil {
		return err
	}
	next, err := reg.Reserve(s)
	if err != nil {
		return err
	}
	return r.save(ctx, next)
}

// Record marks slots as taken without failing on ones already present.
func (r *SlotRegistry) Record(ctx context.Context, slots ...booking.Slot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	reg, err := r.load(ctx)
	if err != nil {
		return err
	}
	before := len(reg)
	for _, s := range slots {
		reg = reg.Record(s)
	}
	if len(reg) == before {
		return nil
	}
	return r.save(ctx, reg)
}

func (r *SlotRegistry) Release(ctx context.Context, slots ...booking.Slot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	reg, err := r.load(ctx)
	if err != nil {
		return err
	}
	before := len(reg)
	for _, s := range slots {
		reg = reg.Release(s)
	}
	if len(reg) == before {
		return nil
	}
	return r.save(ctx, reg)
}
