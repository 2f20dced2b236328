package components

import (
	"order-assembly/internal/pkg/clock"
	"order-assembly/internal/usecase/commands"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		commands.NewOrderCommands,
	),
)
