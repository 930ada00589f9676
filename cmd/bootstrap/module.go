package bootstrap

import (
	"nagoyameshi/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	MetricsModule,
	SessionModule,
	BillingModule,
	StorageModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
