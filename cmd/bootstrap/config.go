package bootstrap

import (
	"time"

	"rental-inventory/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewBusinessLocation,
	),
)

// NewBusinessLocation is the zone dates are parsed and weeks resolved in.
func NewBusinessLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Calendar.Location()
}
