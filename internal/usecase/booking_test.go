//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"carseat-rental/internal/domain/booking"
	"carseat-rental/internal/domain/calendar"
	"carseat-rental/internal/domain/catalog"
	"carseat-rental/internal/domain/session"
	"carseat-rental/internal/infra"
	"carseat-rental/internal/pkg/clock"
	"carseat-rental/internal/usecase"
	"carseat-rental/tests/common/builder"
	usecasemock "carseat-rental/tests/mock/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingUseCaseTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	repo      *usecasemock.MockBookingRepository
	readStore *usecasemock.MockBookingReadStore
	catalog   *usecasemock.MockCatalogProvider
	uc        usecase.BookingUseCase
	sess      session.Session
	ctx       context.Context
}

func (s *BookingUseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = usecasemock.NewMockBookingRepository(s.ctrl)
	s.readStore = usecasemock.NewMockBookingReadStore(s.ctrl)
	s.catalog = usecasemock.NewMockCatalogProvider(s.ctrl)
	s.uc = usecase.NewBookingUseCase(s.repo, s.readStore, s.catalog, clock.NewMockClock(fixedNow))
	s.sess = builder.NewUserBuilder().BuildSession()
	s.ctx = context.Background()

	cat := builder.NewCatalogBuilder().Build()
	s.catalog.EXPECT().FindLocation(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id int) (catalog.Location, error) {
		return cat.Location(id)
	}).AnyTimes()
	s.catalog.EXPECT().FindItemType(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id catalog.ItemTypeID) (catalog.ItemType, error) {
		return cat.ItemType(id)
	}).AnyTimes()
}

func (s *BookingUseCaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingUseCaseTestSuite(t *testing.T) {
	suite.Run(t, new(BookingUseCaseTestSuite))
}

func (s *BookingUseCaseTestSuite) booking(id string, status booking.Status, created time.Time) *booking.Booking {
	return builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.ID = id
		b.UserID = s.sess.UserID
		b.Status = status
		b.CreatedAt = created
	}).BuildDomain()
}

func (s *BookingUseCaseTestSuite) TestList() {
	s.Run("groups by status, newest first, with display names", func() {
		older := s.booking("RSB-1", booking.StatusActive, fixedNow.Add(-48*time.Hour))
		newer := s.booking("RSB-2", booking.StatusActive, fixedNow.Add(-time.Hour))
		done := s.booking("RSB-3", booking.StatusCompleted, fixedNow.Add(-72*time.Hour))
		gone := s.booking("RSB-4", booking.StatusCancelled, fixedNow.Add(-24*time.Hour))
		s.readStore.EXPECT().ListByUser(s.ctx, s.sess.UserID).
			Return([]*booking.Booking{older, done, newer, gone}, nil).Times(1)

		got, err := s.uc.List(s.ctx, &s.sess)
		s.Require().NoError(err)

		s.Require().Len(got.Active, 2)
		s.Equal("RSB-2", got.Active[0].ID())
		s.Equal("RSB-1", got.Active[1].ID())
		s.Equal("Los Angeles International Airport", got.Active[0].LocationName)
		s.Equal("LAX", got.Active[0].LocationCode)
		s.Equal("Wayb Pico", got.Active[0].ItemTypeName)
		s.True(got.Active[0].CanCancel)

		s.Require().Len(got.Completed, 1)
		s.False(got.Completed[0].CanCancel)
		s.Require().Len(got.Cancelled, 1)
		s.Equal("RSB-4", got.Cancelled[0].ID())
	})

	s.Run("empty history yields empty groups", func() {
		s.readStore.EXPECT().ListByUser(s.ctx, s.sess.UserID).Return(nil, nil).Times(1)

		got, err := s.uc.List(s.ctx, &s.sess)
		s.Require().NoError(err)
		s.NotNil(got.Active)
		s.Empty(got.Active)
		s.Empty(got.Completed)
		s.Empty(got.Cancelled)
	})

	s.Run("signed out", func() {
		_, err := s.uc.List(s.ctx, nil)
		s.ErrorIs(err, usecase.ErrNotAuthenticated)
	})
}

func (s *BookingUseCaseTestSuite) TestGet() {
	s.Run("other users' bookings are not found", func() {
		s.readStore.EXPECT().FindForUser(s.ctx, s.sess.UserID, "RSB-X").
			Return(nil, infra.WrapRepoErr("booking not found", pgx.ErrNoRows)).Times(1)

		_, err := s.uc.Get(s.ctx, &s.sess, "RSB-X")
		s.ErrorIs(err, usecase.ErrBookingNotFound)
	})

	s.Run("found", func() {
		b := s.booking("RSB-1", booking.StatusActive, fixedNow)
		s.readStore.EXPECT().FindForUser(s.ctx, s.sess.UserID, "RSB-1").Return(b, nil).Times(1)

		got, err := s.uc.Get(s.ctx, &s.sess, "RSB-1")
		s.Require().NoError(err)
		s.Equal("54.80", got.Cost().Total.String())
	})
}

func (s *BookingUseCaseTestSuite) TestCancel() {
	s.Run("success: upcoming active booking", func() {
		b := s.booking("RSB-1", booking.StatusActive, fixedNow)
		s.readStore.EXPECT().FindForUser(s.ctx, s.sess.UserID, "RSB-1").Return(b, nil).Times(1)
		s.repo.EXPECT().UpdateStatus(s.ctx, b, booking.StatusActive).Return(nil).Times(1)

		got, err := s.uc.Cancel(s.ctx, &s.sess, "RSB-1")
		s.Require().NoError(err)
		s.Equal(booking.StatusCancelled, got.Status())
		s.False(got.CanCancel)
	})

	s.Run("error: pickup day already passed", func() {
		b := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
			bb.UserID = s.sess.UserID
			bb.PickupDate = calendar.New(2024, time.August, 1)
			bb.ReturnDate = calendar.New(2024, time.August, 9)
		}).BuildDomain()
		s.readStore.EXPECT().FindForUser(s.ctx, s.sess.UserID, b.ID()).Return(b, nil).Times(1)

		_, err := s.uc.Cancel(s.ctx, &s.sess, b.ID())
		s.ErrorIs(err, usecase.ErrBookingNotCancellable)
	})

	s.Run("error: already cancelled", func() {
		b := s.booking("RSB-1", booking.StatusCancelled, fixedNow)
		s.readStore.EXPECT().FindForUser(s.ctx, s.sess.UserID, "RSB-1").Return(b, nil).Times(1)

		_, err := s.uc.Cancel(s.ctx, &s.sess, "RSB-1")
		s.ErrorIs(err, usecase.ErrBookingNotCancellable)
	})

	s.Run("error: status changed concurrently", func() {
		b := s.booking("RSB-1", booking.StatusActive, fixedNow)
		s.readStore.EXPECT().FindForUser(s.ctx, s.sess.UserID, "RSB-1").Return(b, nil).Times(1)
		s.repo.EXPECT().UpdateStatus(s.ctx, b, booking.StatusActive).
			Return(infra.WrapRepoErr("booking not found", pgx.ErrNoRows)).Times(1)

		_, err := s.uc.Cancel(s.ctx, &s.sess, "RSB-1")
		s.ErrorIs(err, usecase.ErrBookingNotCancellable)
	})
}

func (s *BookingUseCaseTestSuite) TestCompleteDue() {
	s.Run("completes against today's UTC date", func() {
		s.repo.EXPECT().CompleteDue(s.ctx, calendar.DateOf(fixedNow)).Return(int64(3), nil).Times(1)

		n, err := s.uc.CompleteDue(s.ctx)
		s.Require().NoError(err)
		s.Equal(int64(3), n)
	})

	s.Run("repository failure", func() {
		boom := errors.New("boom")
		s.repo.EXPECT().CompleteDue(s.ctx, gomock.Any()).Return(int64(0), boom).Times(1)

		_, err := s.uc.CompleteDue(s.ctx)
		s.ErrorIs(err, boom)
	})
}
