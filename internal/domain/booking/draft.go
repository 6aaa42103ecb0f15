package booking

import (
	"carseat-rental/internal/domain/calendar"
	"carseat-rental/internal/domain/catalog"
)

// Draft is the in-progress booking assembled by the wizard. Zero values mean "not selected".
type Draft struct {
	LocationID     int                `json:"location_id,omitempty"`
	ItemTypeID     catalog.ItemTypeID `json:"item_type_id,omitempty"`
	PickupDate     calendar.Date      `json:"pickup_date"`
	ReturnDate     calendar.Date      `json:"return_date"`
	SpecialRequest string             `json:"special_request,omitempty"`
	Contact        ContactInfo        `json:"contact"`
	Cost           *CostBreakdown     `json:"cost,omitempty"`
}

func (d Draft) HasOrderedDates() bool {
	return !d.PickupDate.IsZero() && !d.ReturnDate.IsZero() && d.ReturnDate.After(d.PickupDate)
}

// WithinRentalLimit reports whether the selected dates span at most MaxRentalDays.
func (d Draft) WithinRentalLimit() bool {
	return d.HasOrderedDates() && d.PickupDate.DaysUntil(d.ReturnDate) <= MaxRentalDays
}

// TripComplete reports whether every trip field is selected and the dates are ordered and within the limit.
func (d Draft) TripComplete() bool {
	return d.LocationID != 0 && d.ItemTypeID != "" && d.WithinRentalLimit()
}
