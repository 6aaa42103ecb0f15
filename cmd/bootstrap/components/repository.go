package components

import (
	"carseat-rental/internal/infra/readstore"
	"carseat-rental/internal/infra/repository"
	"carseat-rental/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(fx.Self()),
			fx.As(new(usecase.BookingRepository)),
		),
		// Read-side store for the dashboard
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(usecase.BookingReadStore)),
		),
	),
)
