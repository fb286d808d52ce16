package components

import (
	"rental-inventory/internal/handler"
	"rental-inventory/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewStatisticsHandler,
	),
	fx.Invoke(handler.NewRouter),
)
