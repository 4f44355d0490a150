package components

import (
	"net/http"

	"beautyverse-storefront/internal/pkg/clock"
	"beautyverse-storefront/internal/pkg/config"
	"beautyverse-storefront/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseStorefrontModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewBackendHTTPClient,
)

var usecaseStorefrontModule = fx.Module("usecase/storefront",
	fx.Provide(
		fx.Annotate(
			usecase.NewStorefrontFactory,
			fx.As(new(usecase.Storefronts)),
		),
	),
)

// NewBackendHTTPClient is shared by every client's API wrapper.
func NewBackendHTTPClient(cfg config.Config) *http.Client {
	return &http.Client{Timeout: cfg.Backend.Timeout}
}
