package bootstrap

import (
	"beautyverse-storefront/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StorageModule,
	components.UseCaseModule,
	components.HandlerModule,
)
