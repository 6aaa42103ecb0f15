package components

import (
	"carseat-rental/internal/handler"
	"carseat-rental/internal/handler/api"
	"carseat-rental/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewBookingDraftHandler,
		api.NewBookingHandler,
		middleware.NewClientMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	catalog *api.CatalogHandler,
	draft *api.BookingDraftHandler,
	bookings *api.BookingHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Catalog:      catalog,
		BookingDraft: draft,
		Booking:      bookings,
	}
}
