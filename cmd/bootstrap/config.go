package bootstrap

import (
	"time"

	"hosteed/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewBookingLocation,
	),
)

// NewBookingLocation is the zone that decides which calendar day "today" is.
func NewBookingLocation(cfg config.Config) *time.Location {
	return cfg.Booking.Location()
}
