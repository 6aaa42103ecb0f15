package components

import (
	"fmt"

	"carseat-rental/internal/domain/booking"
	"carseat-rental/internal/infra/catalog"
	"carseat-rental/internal/infra/db"
	"carseat-rental/internal/infra/redisstore"
	"carseat-rental/internal/infra/repository"
	"carseat-rental/internal/infra/submission"
	"carseat-rental/internal/pkg/clock"
	"carseat-rental/internal/pkg/config"
	"carseat-rental/internal/usecase"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	redisModule,
	catalogModule,
	submissionModule,
)

var redisModule = fx.Module("persistence/redis",
	fx.Provide(
		fx.Annotate(
			redisstore.NewSessionStore,
			fx.As(new(usecase.SessionStore)),
		),
		fx.Annotate(
			redisstore.NewDraftStore,
			fx.As(new(usecase.DraftStore)),
		),
	),
)

var catalogModule = fx.Module("persistence/catalog",
	fx.Provide(
		fx.Annotate(
			catalog.NewStaticProvider,
			fx.As(new(usecase.CatalogProvider)),
		),
	),
)

var submissionModule = fx.Module("persistence/submission",
	fx.Provide(
		fx.Annotate(
			booking.NewRandomIDGenerator,
			fx.As(new(booking.IDGenerator)),
		),
		NewBookingSubmitter,
	),
)

// NewBookingSubmitter picks the submitter named by BOOKING_SUBMITTER.
func NewBookingSubmitter(
	cfg config.Config,
	tx *db.TxRunner,
	bookings *repository.BookingRepository,
	provider usecase.CatalogProvider,
	ids booking.IDGenerator,
	clk clock.Clock,
) (usecase.BookingSubmitter, error) {
	switch cfg.Booking.Submitter {
	case config.SubmitterPostgres:
		return submission.NewPostgresSubmitter(tx, bookings, provider, ids, clk), nil
	case config.SubmitterSimulated:
		return submission.NewSimulatedSubmitter(provider, ids, clk, cfg), nil
	default:
		return nil, fmt.Errorf("unknown booking submitter %q", cfg.Booking.Submitter)
	}
}
