package components

import (
	"hosteed/internal/handler"
	"hosteed/internal/handler/api"
	"hosteed/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		api.NewPropertyHandler,
		api.NewPromotionHandler,
		api.NewCommissionHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	availability *api.AvailabilityHandler,
	booking *api.BookingHandler,
	property *api.PropertyHandler,
	promotion *api.PromotionHandler,
	commission *api.CommissionHandler,
) handler.Handlers {
	return handler.Handlers{
		Availability: availability,
		Booking:      booking,
		Property:     property,
		Promotion:    promotion,
		Commission:   commission,
	}
}
