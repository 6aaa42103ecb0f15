//go:build unit

package converter_test

import (
	"testing"

	"carseat-rental/internal/domain/booking"
	"carseat-rental/internal/infra/converter"
	"carseat-rental/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingToRow(t *testing.T) {
	b := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
		bb.SpecialRequest = "Rear-facing please"
	}).BuildDomain()

	row := converter.BookingToRow(b)

	assert.Equal(t, "active", row.Status)
	assert.Equal(t, "wayb_pico", row.ItemTypeID)
	assert.Equal(t, int32(3), row.Days)
	assert.Equal(t, int64(1495), row.DailyRateCents)
	assert.Equal(t, int64(4485), row.SubtotalCents)
	assert.Equal(t, int64(995), row.CleaningFeeCents)
	assert.Equal(t, int64(5480), row.TotalCents)
	assert.True(t, row.PickupDate.Valid)
	assert.Equal(t, "2024-08-10", row.PickupDate.Time.Format("2006-01-02"))

	back, err := converter.BookingFromRow(row)
	require.NoError(t, err)
	if diff := cmp.Diff(b, back, cmp.AllowUnexported(booking.Booking{})); diff != "" {
		t.Errorf("booking mismatch (-want +got):\n%s", diff)
	}
}

func TestBookingFromRow_RejectsUnknownValues(t *testing.T) {
	base := converter.BookingToRow(builder.NewBookingBuilder().BuildDomain())

	badStatus := base
	badStatus.Status = "pending"
	_, err := converter.BookingFromRow(badStatus)
	assert.ErrorIs(t, err, booking.ErrInvalidStatus)

	badItem := base
	badItem.ItemTypeID = "booster"
	_, err = converter.BookingFromRow(badItem)
	assert.Error(t, err)
}
