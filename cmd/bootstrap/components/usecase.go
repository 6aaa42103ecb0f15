package components

import (
	"carseat-rental/internal/pkg/clock"
	"carseat-rental/internal/pkg/password"
	"carseat-rental/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	password.NewHasher,
)

var usecaseModule = fx.Module("usecase/services",
	fx.Provide(
		usecase.NewClientResolver,
		usecase.NewAuthUseCase,
		usecase.NewCatalogUseCase,
		usecase.NewWizardUseCase,
		usecase.NewBookingUseCase,
	),
)
