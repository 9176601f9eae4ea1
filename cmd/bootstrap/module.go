package bootstrap

import (
	"eventtix/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	PubSubModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
