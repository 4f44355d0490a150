package components

import (
	"beautyverse-storefront/internal/handler"
	"beautyverse-storefront/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		handler.NewHandlers,
		middleware.NewClientMiddleware,
		middleware.NewRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)
