//go:build unit || e2e

package builder

import (
	"time"

	"carseat-rental/internal/domain/booking"
	"carseat-rental/internal/domain/calendar"
	"carseat-rental/internal/domain/catalog"
	"carseat-rental/internal/domain/money"

	"github.com/google/uuid"
)

// BookingBuilder defaults to a three day Wayb Pico rental at LAX.
type BookingBuilder struct {
	ID             string
	UserID         uuid.UUID
	Status         booking.Status
	LocationID     int
	ItemTypeID     catalog.ItemTypeID
	PickupDate     calendar.Date
	ReturnDate     calendar.Date
	SpecialRequest string
	Contact        booking.ContactInfo
	PickupCode     string
	CreatedAt      time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:         "RSB-2024-TESTTEST",
		UserID:     uuid.New(),
		Status:     booking.StatusActive,
		LocationID: 1,
		ItemTypeID: catalog.ItemWaybPico,
		PickupDate: calendar.New(2024, time.August, 10),
		ReturnDate: calendar.New(2024, time.August, 13),
		Contact: booking.ContactInfo{
			FirstName: "Taylor",
			LastName:  "Rivera",
			Email:     "test@example.com",
			Phone:     "(555) 123-4567",
		},
		PickupCode: "ABC123",
		CreatedAt:  time.Date(2024, 8, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDraft() booking.Draft {
	d := booking.Draft{
		LocationID:     b.LocationID,
		ItemTypeID:     b.ItemTypeID,
		PickupDate:     b.PickupDate,
		ReturnDate:     b.ReturnDate,
		SpecialRequest: b.SpecialRequest,
		Contact:        b.Contact,
	}
	if cost, err := booking.ComputeCost(b.PickupDate, b.ReturnDate, b.itemType()); err == nil {
		d.Cost = &cost
	}
	return d
}

// BuildDomain reconstructs a stored booking carrying the builder's status.
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	cost, err := booking.ComputeCost(b.PickupDate, b.ReturnDate, b.itemType())
	if err != nil {
		panic(err)
	}
	return booking.Reconstruct(booking.ReconstructParams{
		ID:             b.ID,
		UserID:         b.UserID,
		Status:         b.Status,
		LocationID:     b.LocationID,
		ItemTypeID:     b.ItemTypeID,
		PickupDate:     b.PickupDate,
		ReturnDate:     b.ReturnDate,
		SpecialRequest: b.SpecialRequest,
		Contact:        b.Contact,
		Cost:           cost,
		PickupCode:     b.PickupCode,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.CreatedAt,
	})
}

func (b *BookingBuilder) itemType() catalog.ItemType {
	rate := money.MustParse("14.95")
	if b.ItemTypeID == catalog.ItemRidesaferVest {
		rate = money.MustParse("9.95")
	}
	return catalog.ItemType{ID: b.ItemTypeID, Name: string(b.ItemTypeID), DailyRate: rate}
}
