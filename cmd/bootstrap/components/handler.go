package components

import (
	"slotbook/internal/handler"
	"slotbook/internal/handler/api"
	"slotbook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewBookingHandler,
		api.NewAvailabilityHandler,
		middleware.NewAuthMiddleware,
		func(r *api.ReservationHandler, b *api.BookingHandler, a *api.AvailabilityHandler) handler.Handlers {
			return handler.Handlers{Reservation: r, Booking: b, Availability: a}
		},
	),
	fx.Invoke(handler.NewRouter),
)
