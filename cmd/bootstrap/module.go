package bootstrap

import (
	"order-assembly/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	CredentialModule,
	QueueModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)
