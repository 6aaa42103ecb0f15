package booking

import (
	"errors"
	"strings"
	"time"

	"carseat-rental/internal/domain/calendar"
	"carseat-rental/internal/domain/catalog"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus       = errors.New("invalid booking status")
	ErrIncompleteDraft     = errors.New("draft is missing trip details")
	ErrItemTypeMismatch    = errors.New("item type does not match draft")
	ErrIncompleteContact   = errors.New("contact info is incomplete")
	ErrNotCancellable      = errors.New("booking cannot be cancelled")
	ErrSpecialRequestLimit = errors.New("special request is too long")
)

const MaxSpecialRequestLength = 1000

type Booking struct {
	id             string
	userID         uuid.UUID
	status         Status
	locationID     int
	itemTypeID     catalog.ItemTypeID
	pickupDate     calendar.Date
	returnDate     calendar.Date
	specialRequest string
	contact        ContactInfo
	cost           CostBreakdown
	pickupCode     string
	createdAt      time.Time
	updatedAt      time.Time
}

// NewBooking finalizes a draft. The cost is recomputed from the item type rather than trusted from the draft.
func NewBooking(
	ids IDGenerator,
	now time.Time,
	userID uuid.UUID,
	draft Draft,
	item catalog.ItemType,
	contact ContactInfo,
) (*Booking, error) {
	if draft.LocationID == 0 || draft.ItemTypeID == "" {
		return nil, ErrIncompleteDraft
	}
	if draft.ItemTypeID != item.ID {
		return nil, ErrItemTypeMismatch
	}
	cost, err := ComputeCost(draft.PickupDate, draft.ReturnDate, item)
	if err != nil {
		return nil, err
	}
	contact = contact.Normalize()
	if !contact.IsComplete() {
		return nil, ErrIncompleteContact
	}
	special := strings.TrimSpace(draft.SpecialRequest)
	if len(special) > MaxSpecialRequestLength {
		return nil, ErrSpecialRequestLimit
	}

	return &Booking{
		id:             ids.BookingID(now),
		userID:         userID,
		status:         StatusActive,
		locationID:     draft.LocationID,
		itemTypeID:     draft.ItemTypeID,
		pickupDate:     draft.PickupDate,
		returnDate:     draft.ReturnDate,
		specialRequest: special,
		contact:        contact,
		cost:           cost,
		pickupCode:     ids.PickupCode(),
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

type ReconstructParams struct {
	ID             string
	UserID         uuid.UUID
	Status         Status
	LocationID     int
	ItemTypeID     catalog.ItemTypeID
	PickupDate     calendar.Date
	ReturnDate     calendar.Date
	SpecialRequest string
	Contact        ContactInfo
	Cost           CostBreakdown
	PickupCode     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func Reconstruct(p ReconstructParams) *Booking {
	return &Booking{
		id:             p.ID,
		userID:         p.UserID,
		status:         p.Status,
		locationID:     p.LocationID,
		itemTypeID:     p.ItemTypeID,
		pickupDate:     p.PickupDate,
		returnDate:     p.ReturnDate,
		specialRequest: p.SpecialRequest,
		contact:        p.Contact,
		cost:           p.Cost,
		pickupCode:     p.PickupCode,
		createdAt:      p.CreatedAt,
		updatedAt:      p.UpdatedAt,
	}
}

func (b *Booking) IsActive() bool {
	return b.status == StatusActive
}

// CanCancel allows cancelling active bookings whose pickup day has not passed.
func (b *Booking) CanCancel(today calendar.Date) bool {
	return b.IsActive() && !b.pickupDate.Before(today)
}

func (b *Booking) Cancel(now time.Time, today calendar.Date) error {
	if !b.CanCancel(today) {
		return ErrNotCancellable
	}
	b.status = StatusCancelled
	b.updatedAt = now
	return nil
}

// IsDue reports whether an active booking's return day is already behind us.
func (b *Booking) IsDue(today calendar.Date) bool {
	return b.IsActive() && b.returnDate.Before(today)
}

func (b *Booking) ID() string                     { return b.id }
func (b *Booking) UserID() uuid.UUID              { return b.userID }
func (b *Booking) Status() Status                 { return b.status }
func (b *Booking) LocationID() int                { return b.locationID }
func (b *Booking) ItemTypeID() catalog.ItemTypeID { return b.itemTypeID }
func (b *Booking) PickupDate() calendar.Date      { return b.pickupDate }
func (b *Booking) ReturnDate() calendar.Date      { return b.returnDate }
func (b *Booking) SpecialRequest() string         { return b.specialRequest }
func (b *Booking) Contact() ContactInfo           { return b.contact }
func (b *Booking) Cost() CostBreakdown            { return b.cost }
func (b *Booking) PickupCode() string             { return b.pickupCode }
func (b *Booking) CreatedAt() time.Time           { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time           { return b.updatedAt }
