package converter

import (
	"fmt"
	"time"

	"carseat-rental/internal/domain/booking"
	"carseat-rental/internal/domain/calendar"
	"carseat-rental/internal/domain/catalog"
	"carseat-rental/internal/domain/money"
	"carseat-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// BookingColumns is the column list ScanBooking expects, in order.
const BookingColumns = `id, user_id, status, location_id, item_type_id, pickup_date, return_date,
	special_request, contact_first_name, contact_last_name, contact_email, contact_phone,
	days, daily_rate_cents, subtotal_cents, cleaning_fee_cents, total_cents,
	pickup_code, created_at, updated_at`

type BookingRow struct {
	ID               string
	UserID           uuid.UUID
	Status           string
	LocationID       int32
	ItemTypeID       string
	PickupDate       pgtype.Date
	ReturnDate       pgtype.Date
	SpecialRequest   string
	ContactFirstName string
	ContactLastName  string
	ContactEmail     string
	ContactPhone     string
	Days             int32
	DailyRateCents   int64
	SubtotalCents    int64
	CleaningFeeCents int64
	TotalCents       int64
	PickupCode       string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func ScanBooking(row pgx.Row) (BookingRow, error) {
	var r BookingRow
	err := row.Scan(
		&r.ID, &r.UserID, &r.Status, &r.LocationID, &r.ItemTypeID, &r.PickupDate, &r.ReturnDate,
		&r.SpecialRequest, &r.ContactFirstName, &r.ContactLastName, &r.ContactEmail, &r.ContactPhone,
		&r.Days, &r.DailyRateCents, &r.SubtotalCents, &r.CleaningFeeCents, &r.TotalCents,
		&r.PickupCode, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

func BookingToRow(b *booking.Booking) BookingRow {
	cost := b.Cost()
	contact := b.Contact()
	return BookingRow{
		ID:               b.ID(),
		UserID:           b.UserID(),
		Status:           b.Status().String(),
		LocationID:       int32(b.LocationID()),
		ItemTypeID:       b.ItemTypeID().String(),
		PickupDate:       pgconv.DateToPgtype(b.PickupDate().Time()),
		ReturnDate:       pgconv.DateToPgtype(b.ReturnDate().Time()),
		SpecialRequest:   b.SpecialRequest(),
		ContactFirstName: contact.FirstName,
		ContactLastName:  contact.LastName,
		ContactEmail:     contact.Email,
		ContactPhone:     contact.Phone,
		Days:             int32(cost.Days),
		DailyRateCents:   cost.DailyRate.Cents(),
		SubtotalCents:    cost.Subtotal.Cents(),
		CleaningFeeCents: cost.CleaningFee.Cents(),
		TotalCents:       cost.Total.Cents(),
		PickupCode:       b.PickupCode(),
		CreatedAt:        b.CreatedAt(),
		UpdatedAt:        b.UpdatedAt(),
	}
}

func BookingFromRow(r BookingRow) (*booking.Booking, error) {
	status, err := booking.NewStatus(r.Status)
	if err != nil {
		return nil, fmt.Errorf("booking %s: %w", r.ID, err)
	}
	itemType, err := catalog.NewItemTypeID(r.ItemTypeID)
	if err != nil {
		return nil, fmt.Errorf("booking %s: %w", r.ID, err)
	}

	return booking.Reconstruct(booking.ReconstructParams{
		ID:             r.ID,
		UserID:         r.UserID,
		Status:         status,
		LocationID:     int(r.LocationID),
		ItemTypeID:     itemType,
		PickupDate:     calendar.DateOf(pgconv.DateFromPgtype(r.PickupDate)),
		ReturnDate:     calendar.DateOf(pgconv.DateFromPgtype(r.ReturnDate)),
		SpecialRequest: r.SpecialRequest,
		Contact: booking.ContactInfo{
			FirstName: r.ContactFirstName,
			LastName:  r.ContactLastName,
			Email:     r.ContactEmail,
			Phone:     r.ContactPhone,
		},
		Cost: booking.CostBreakdown{
			Days:        int(r.Days),
			DailyRate:   money.FromCents(r.DailyRateCents),
			Subtotal:    money.FromCents(r.SubtotalCents),
			CleaningFee: money.FromCents(r.CleaningFeeCents),
			Total:       money.FromCents(r.TotalCents),
		},
		PickupCode: r.PickupCode,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}), nil
}
