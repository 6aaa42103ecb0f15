package submission

import (
	"context"
	"errors"
	"log/slog"

	"carseat-rental/internal/domain/booking"
	"carseat-rental/internal/domain/calendar"
	"carseat-rental/internal/domain/catalog"
	"carseat-rental/internal/infra"
	"carseat-rental/internal/infra/db"
	"carseat-rental/internal/infra/repository"
	"carseat-rental/internal/pkg/clock"
	"carseat-rental/internal/pkg/errs"
	"carseat-rental/internal/usecase"
)

// PostgresSubmitter re-validates a draft and inserts the booking when the location still has a free seat.
type PostgresSubmitter struct {
	tx       *db.TxRunner
	bookings *repository.BookingRepository
	catalog  usecase.CatalogProvider
	ids      booking.IDGenerator
	clock    clock.Clock
}

func NewPostgresSubmitter(
	tx *db.TxRunner,
	bookings *repository.BookingRepository,
	catalog usecase.CatalogProvider,
	ids booking.IDGenerator,
	clk clock.Clock,
) *PostgresSubmitter {
	return &PostgresSubmitter{
		tx:       tx,
		bookings: bookings,
		catalog:  catalog,
		ids:      ids,
		clock:    clk,
	}
}

func (s *PostgresSubmitter) Submit(ctx context.Context, req usecase.SubmissionRequest) (*booking.Booking, error) {
	var out *booking.Booking
	err := s.tx.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		// a draft that already produced a booking gets the same booking back
		existing, err := s.bookings.FindByDraftID(ctx, tx, req.DraftID)
		if err == nil {
			out = existing
			return nil
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return err
		}

		now := s.clock.Now()
		loc, item, err := s.validate(ctx, req, calendar.DateOf(clock.Today(s.clock)))
		if err != nil {
			return err
		}

		if err := s.bookings.LockInventory(ctx, tx, loc.ID, item.ID); err != nil {
			return err
		}
		taken, err := s.bookings.CountOverlapping(ctx, tx, loc.ID, item.ID, req.Draft.PickupDate, req.Draft.ReturnDate)
		if err != nil {
			return err
		}
		if taken >= loc.Inventory.Count(item.ID) {
			return usecase.ErrInventoryExhausted
		}

		b, err := booking.NewBooking(s.ids, now, req.UserID, req.Draft, item, req.Contact)
		if err != nil {
			return rejected(err)
		}
		if err := s.bookings.Insert(ctx, tx, req.DraftID, b); err != nil {
			return err
		}
		out = b
		return nil
	})

	switch {
	case err == nil:
		slog.Info("Booking persisted", "booking_id", out.ID(), "draft_id", req.DraftID, "user_id", req.UserID)
		return out, nil
	case ctx.Err() != nil:
		return nil, ctx.Err()
	case errors.Is(err, usecase.ErrSubmissionRejected), errors.Is(err, usecase.ErrInventoryExhausted):
		return nil, err
	default:
		return nil, errs.Mark(errs.Wrap(err, "persist booking"), usecase.ErrSubmissionNetwork)
	}
}

func (s *PostgresSubmitter) validate(ctx context.Context, req usecase.SubmissionRequest, today calendar.Date) (catalog.Location, catalog.ItemType, error) {
	d := req.Draft
	loc, err := s.catalog.FindLocation(ctx, d.LocationID)
	if err != nil {
		return catalog.Location{}, catalog.ItemType{}, rejected(err)
	}
	if !loc.Available {
		return catalog.Location{}, catalog.ItemType{}, errs.Wrapf(usecase.ErrSubmissionRejected, "location %s is not taking bookings", loc.Code)
	}
	item, err := s.catalog.FindItemType(ctx, d.ItemTypeID)
	if err != nil {
		return catalog.Location{}, catalog.ItemType{}, rejected(err)
	}
	if !loc.Offers(item.ID) {
		return catalog.Location{}, catalog.ItemType{}, errs.Wrapf(usecase.ErrSubmissionRejected, "%s is not stocked at %s", item.Name, loc.Code)
	}
	if !d.HasOrderedDates() {
		return catalog.Location{}, catalog.ItemType{}, rejected(booking.ErrInvalidRange)
	}
	if !d.WithinRentalLimit() {
		return catalog.Location{}, catalog.ItemType{}, rejected(booking.ErrRentalTooLong)
	}
	if d.PickupDate.Before(today) {
		return catalog.Location{}, catalog.ItemType{}, errs.Wrap(usecase.ErrSubmissionRejected, "pickup date is in the past")
	}
	if !req.Contact.IsComplete() {
		return catalog.Location{}, catalog.ItemType{}, rejected(booking.ErrIncompleteContact)
	}
	return loc, item, nil
}

func rejected(cause error) error {
	return errs.Mark(cause, usecase.ErrSubmissionRejected)
}
