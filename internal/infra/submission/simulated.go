package submission

import (
	"context"
	"time"

	"carseat-rental/internal/domain/booking"
	"carseat-rental/internal/pkg/clock"
	"carseat-rental/internal/pkg/config"
	"carseat-rental/internal/usecase"
)

// FailureFunc decides whether a simulated submission fails. A nil error lets it succeed.
type FailureFunc func(req usecase.SubmissionRequest) error

// SimulatedSubmitter confirms bookings after a fixed delay without persisting them.
type SimulatedSubmitter struct {
	catalog usecase.CatalogProvider
	ids     booking.IDGenerator
	clock   clock.Clock
	delay   time.Duration
	fail    FailureFunc
}

func NewSimulatedSubmitter(
	catalog usecase.CatalogProvider,
	ids booking.IDGenerator,
	clk clock.Clock,
	cfg config.Config,
) *SimulatedSubmitter {
	return &SimulatedSubmitter{
		catalog: catalog,
		ids:     ids,
		clock:   clk,
		delay:   cfg.Booking.SimulatedDelay,
	}
}

func (s *SimulatedSubmitter) WithFailure(fail FailureFunc) *SimulatedSubmitter {
	cp := *s
	cp.fail = fail
	return &cp
}

func (s *SimulatedSubmitter) Submit(ctx context.Context, req usecase.SubmissionRequest) (*booking.Booking, error) {
	if err := wait(ctx, s.delay); err != nil {
		return nil, err
	}
	if s.fail != nil {
		if err := s.fail(req); err != nil {
			return nil, err
		}
	}

	item, err := s.catalog.FindItemType(ctx, req.Draft.ItemTypeID)
	if err != nil {
		return nil, rejected(err)
	}
	b, err := booking.NewBooking(s.ids, s.clock.Now(), req.UserID, req.Draft, item, req.Contact)
	if err != nil {
		return nil, rejected(err)
	}
	return b, nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
