package bootstrap

import (
	"carseat-rental/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module wires the whole API process: config, stores, use cases, HTTP and background jobs.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	FxLogger,
	DBModule,
	JWTModule,
	components.RepositoryModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	components.JobsModule,
)
