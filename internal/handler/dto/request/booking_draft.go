package request

import (
	"carseat-rental/internal/domain/calendar"
	"carseat-rental/internal/domain/catalog"
	"carseat-rental/internal/domain/wizard"
	"carseat-rental/internal/usecase"
)

const ReasonInvalidFormat = "invalid_format"

// TripRequest is a partial update: omitted fields keep their current value.
type TripRequest struct {
	LocationID     *int    `json:"location_id"`
	ItemTypeID     *string `json:"item_type_id"`
	PickupDate     *string `json:"pickup_date"`
	ReturnDate     *string `json:"return_date"`
	SpecialRequest *string `json:"special_request"`
}

func (r *TripRequest) ToUpdate() (usecase.TripUpdate, error) {
	out := usecase.TripUpdate{
		LocationID:     r.LocationID,
		SpecialRequest: r.SpecialRequest,
	}
	if r.ItemTypeID != nil {
		id := catalog.ItemTypeID(*r.ItemTypeID)
		out.ItemTypeID = &id
	}
	if r.PickupDate != nil {
		d, err := calendar.Parse(*r.PickupDate)
		if err != nil {
			return usecase.TripUpdate{}, &wizard.ValidationError{Field: "pickup_date", Reason: ReasonInvalidFormat}
		}
		out.PickupDate = &d
	}
	if r.ReturnDate != nil {
		d, err := calendar.Parse(*r.ReturnDate)
		if err != nil {
			return usecase.TripUpdate{}, &wizard.ValidationError{Field: "return_date", Reason: ReasonInvalidFormat}
		}
		out.ReturnDate = &d
	}
	return out, nil
}

type ContactRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

func (r *ContactRequest) ToUpdate() usecase.ContactUpdate {
	return usecase.ContactUpdate{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
	}
}
