package usecase

//go:generate mockgen -source=$GOFILE -destination=../../tests/mock/usecase/$GOFILE -package=usecasemock

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"carseat-rental/internal/domain/booking"
	"carseat-rental/internal/domain/calendar"
	"carseat-rental/internal/domain/session"
	"carseat-rental/internal/infra"
	"carseat-rental/internal/pkg/clock"
	"carseat-rental/internal/pkg/errs"
)

var (
	ErrBookingNotFound       = errors.New("booking not found")
	ErrBookingNotCancellable = errors.New("only upcoming active bookings can be cancelled")
)

// BookingView is a booking enriched with display names from the catalog.
type BookingView struct {
	*booking.Booking
	LocationName string
	LocationCode string
	ItemTypeName string
	CanCancel    bool
}

type BookingOverview struct {
	Active    []BookingView
	Completed []BookingView
	Cancelled []BookingView
}

type BookingUseCase interface {
	List(ctx context.Context, sess *session.Session) (*BookingOverview, error)
	Get(ctx context.Context, sess *session.Session, id string) (*BookingView, error)
	Cancel(ctx context.Context, sess *session.Session, id string) (*BookingView, error)
	CompleteDue(ctx context.Context) (int64, error)
}

type bookingUseCaseImpl struct {
	bookingRepo BookingRepository
	readStore   BookingReadStore
	catalog     CatalogProvider
	clock       clock.Clock
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	readStore BookingReadStore,
	catalog CatalogProvider,
	clk clock.Clock,
) BookingUseCase {
	return &bookingUseCaseImpl{
		bookingRepo: bookingRepo,
		readStore:   readStore,
		catalog:     catalog,
		clock:       clk,
	}
}

func (u *bookingUseCaseImpl) List(ctx context.Context, sess *session.Session) (*BookingOverview, error) {
	if sess == nil {
		return nil, ErrNotAuthenticated
	}

	bookings, err := u.readStore.ListByUser(ctx, sess.UserID)
	if err != nil {
		return nil, errs.Wrap(err, "list bookings")
	}
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt().After(bookings[j].CreatedAt())
	})

	today := u.today()
	out := &BookingOverview{
		Active:    []BookingView{},
		Completed: []BookingView{},
		Cancelled: []BookingView{},
	}
	for _, b := range bookings {
		v := u.view(ctx, b, today)
		switch b.Status() {
		case booking.StatusActive:
			out.Active = append(out.Active, v)
		case booking.StatusCompleted:
			out.Completed = append(out.Completed, v)
		case booking.StatusCancelled:
			out.Cancelled = append(out.Cancelled, v)
		}
	}
	return out, nil
}

func (u *bookingUseCaseImpl) Get(ctx context.Context, sess *session.Session, id string) (*BookingView, error) {
	if sess == nil {
		return nil, ErrNotAuthenticated
	}
	b, err := u.findOwned(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	v := u.view(ctx, b, u.today())
	return &v, nil
}

func (u *bookingUseCaseImpl) Cancel(ctx context.Context, sess *session.Session, id string) (*BookingView, error) {
	if sess == nil {
		return nil, ErrNotAuthenticated
	}
	b, err := u.findOwned(ctx, sess, id)
	if err != nil {
		return nil, err
	}

	now := u.clock.Now()
	today := u.today()
	if err := b.Cancel(now, today); err != nil {
		return nil, ErrBookingNotCancellable
	}
	if err := u.bookingRepo.UpdateStatus(ctx, b, booking.StatusActive); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// completed or cancelled concurrently
			return nil, ErrBookingNotCancellable
		}
		return nil, errs.Wrap(err, "cancel booking")
	}

	slog.Info("Booking cancelled", "booking_id", b.ID(), "user_id", sess.UserID)
	v := u.view(ctx, b, today)
	return &v, nil
}

// CompleteDue marks active bookings whose return day has passed as completed.
func (u *bookingUseCaseImpl) CompleteDue(ctx context.Context) (int64, error) {
	n, err := u.bookingRepo.CompleteDue(ctx, u.today())
	if err != nil {
		return 0, errs.Wrap(err, "complete due bookings")
	}
	return n, nil
}

func (u *bookingUseCaseImpl) findOwned(ctx context.Context, sess *session.Session, id string) (*booking.Booking, error) {
	b, err := u.readStore.FindForUser(ctx, sess.UserID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "find booking")
	}
	return b, nil
}

func (u *bookingUseCaseImpl) view(ctx context.Context, b *booking.Booking, today calendar.Date) BookingView {
	v := BookingView{Booking: b, CanCancel: b.CanCancel(today)}
	if loc, err := u.catalog.FindLocation(ctx, b.LocationID()); err == nil {
		v.LocationName = loc.Name
		v.LocationCode = loc.Code
	}
	if item, err := u.catalog.FindItemType(ctx, b.ItemTypeID()); err == nil {
		v.ItemTypeName = item.Name
	}
	return v
}

func (u *bookingUseCaseImpl) today() calendar.Date {
	return calendar.DateOf(clock.Today(u.clock))
}
