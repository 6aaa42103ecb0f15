//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"carseat-rental/internal/domain/booking"
	"carseat-rental/internal/domain/calendar"
	"carseat-rental/internal/domain/catalog"
	"carseat-rental/internal/infra"
	"carseat-rental/internal/infra/converter"
	"carseat-rental/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func bookingRow(b *booking.Booking) stubRow {
	r := converter.BookingToRow(b)
	return stubRow{values: []any{
		r.ID, r.UserID, r.Status, r.LocationID, r.ItemTypeID, r.PickupDate, r.ReturnDate,
		r.SpecialRequest, r.ContactFirstName, r.ContactLastName, r.ContactEmail, r.ContactPhone,
		r.Days, r.DailyRateCents, r.SubtotalCents, r.CleaningFeeCents, r.TotalCents,
		r.PickupCode, r.CreatedAt, r.UpdatedAt,
	}}
}

func TestBookingRepository_FindByDraftID(t *testing.T) {
	stored := builder.NewBookingBuilder().BuildDomain()

	t.Run("found", func(t *testing.T) {
		mockDB := new(MockDBTX)
		mockDB.On("QueryRow", mock.Anything, mock.Anything, mock.Anything).Return(bookingRow(stored))

		got, err := NewBookingRepository(mockDB).FindByDraftID(context.Background(), mockDB, uuid.New())
		require.NoError(t, err)
		assert.Equal(t, stored.ID(), got.ID())
		assert.Equal(t, stored.PickupDate(), got.PickupDate())
		assert.Equal(t, stored.Cost(), got.Cost())
	})

	t.Run("not found", func(t *testing.T) {
		mockDB := new(MockDBTX)
		mockDB.On("QueryRow", mock.Anything, mock.Anything, mock.Anything).Return(stubRow{err: pgx.ErrNoRows})

		_, err := NewBookingRepository(mockDB).FindByDraftID(context.Background(), mockDB, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound), "got %v", err)
	})
}

func TestBookingRepository_CountOverlapping(t *testing.T) {
	pickup := calendar.New(2024, time.August, 10)
	ret := calendar.New(2024, time.August, 13)

	mockDB := new(MockDBTX)
	mockDB.On("QueryRow", mock.Anything, mock.Anything, mock.MatchedBy(func(args []any) bool {
		return len(args) == 4 &&
			args[0] == int32(1) &&
			args[1] == "wayb_pico" &&
			args[2] == pgtype.Date{Time: pickup.Time(), Valid: true} &&
			args[3] == pgtype.Date{Time: ret.Time(), Valid: true}
	})).Return(countRow(7))

	n, err := NewBookingRepository(mockDB).CountOverlapping(context.Background(), mockDB, 1, catalog.ItemWaybPico, pickup, ret)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	mockDB.AssertExpectations(t)
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	b := builder.NewBookingBuilder().BuildDomain()

	tests := []struct {
		name     string
		tag      pgconn.CommandTag
		execErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success", tag: pgconn.NewCommandTag("UPDATE 1")},
		{name: "status changed meanwhile", tag: pgconn.NewCommandTag("UPDATE 0"), wantKind: infra.KindNotFound},
		{name: "database error", execErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB := new(MockDBTX)
			mockDB.On("Exec", mock.Anything, mock.Anything, mock.Anything).Return(tt.tag, tt.execErr)

			err := NewBookingRepository(mockDB).UpdateStatus(context.Background(), b, booking.StatusActive)
			if tt.wantKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
		})
	}
}

func TestBookingRepository_CompleteDue(t *testing.T) {
	today := calendar.New(2024, time.August, 20)

	mockDB := new(MockDBTX)
	mockDB.On("Exec", mock.Anything, mock.Anything, mock.MatchedBy(func(args []any) bool {
		return len(args) == 1 && args[0] == pgtype.Date{Time: today.Time(), Valid: true}
	})).Return(pgconn.NewCommandTag("UPDATE 4"), nil)

	n, err := NewBookingRepository(mockDB).CompleteDue(context.Background(), today)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

type countRow int

func (c countRow) Scan(dest ...any) error {
	*(dest[0].(*int)) = int(c)
	return nil
}
