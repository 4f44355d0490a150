package usecase

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"beautyverse-storefront/internal/infra/apiclient"
	"beautyverse-storefront/internal/pkg/config"
	"beautyverse-storefront/internal/pkg/errs"
	"beautyverse-storefront/internal/pkg/kv"
)

// StorefrontFactory builds a client's stores on demand. Clients share the
// storage backend, the HTTP transport and the slot registry; everything
// else is namespaced by client id.
type StorefrontFactory struct {
	storage  kv.Storage
	registry *SlotRegistry
	http     *http.Client
	baseURL  string
	mode     config.BookingMode
	logger   *slog.Logger
}

func NewStorefrontFactory(storage kv.Storage, httpClient *http.Client, cfg config.Config, logger *slog.Logger) *StorefrontFactory {
	return &StorefrontFactory{
		storage:  storage,
		registry: NewSlotRegistry(storage, logger),
		http:     httpClient,
		baseURL:  cfg.Backend.BaseURL,
		mode:     cfg.Booking.Mode,
		logger:   logger,
	}
}

func (f *StorefrontFactory) Registry() *SlotRegistry { return f.registry }

// Open restores the session and cart of clientID.
func (f *StorefrontFactory) Open(ctx context.Context, clientID string) (*Storefront, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, errs.Validation("client id is required")
	}

	logger := f.logger.With("client_id", clientID)
	scoped := kv.NewScoped(f.storage, kv.ClientPrefix(clientID))
	backend := apiclient.New(f.baseURL, f.http, scoped, logger)

	session := NewSessionStore(scoped, backend, logger)
	if err := session.Restore(ctx); err != nil {
		return nil, errs.Wrap(err, "open storefront")
	}
	cart, err := NewCartStore(ctx, scoped, logger)
	if err != nil {
		return nil, errs.Wrap(err, "open storefront")
	}

	return &Storefront{
		ClientID: clientID,
		Session:  session,
		Cart:     cart,
		Bookings: NewBookingStore(scoped, f.registry, backend, session, f.mode, logger),
		Catalog:  NewCatalogService(backend, logger),
	}, nil
}
