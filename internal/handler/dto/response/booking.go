package response

import (
	"time"

	"carseat-rental/internal/domain/booking"
	"carseat-rental/internal/domain/calendar"
	"carseat-rental/internal/domain/catalog"
	"carseat-rental/internal/usecase"
)

type BookingResponse struct {
	ID             string                `json:"id"`
	Status         booking.Status        `json:"status"`
	LocationID     int                   `json:"location_id"`
	LocationName   string                `json:"location_name"`
	LocationCode   string                `json:"location_code"`
	ItemTypeID     catalog.ItemTypeID    `json:"item_type_id"`
	ItemTypeName   string                `json:"item_type_name"`
	PickupDate     calendar.Date         `json:"pickup_date"`
	ReturnDate     calendar.Date         `json:"return_date"`
	SpecialRequest string                `json:"special_request,omitempty"`
	Contact        booking.ContactInfo   `json:"contact"`
	Cost           booking.CostBreakdown `json:"cost"`
	PickupCode     string                `json:"pickup_code"`
	CanCancel      bool                  `json:"can_cancel"`
	CreatedAt      time.Time             `json:"created_at"`
}

type BookingOverviewResponse struct {
	Active    []*BookingResponse `json:"active"`
	Completed []*BookingResponse `json:"completed"`
	Cancelled []*BookingResponse `json:"cancelled"`
}

func FromBookingView(v *usecase.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:             v.ID(),
		Status:         v.Status(),
		LocationID:     v.LocationID(),
		LocationName:   v.LocationName,
		LocationCode:   v.LocationCode,
		ItemTypeID:     v.ItemTypeID(),
		ItemTypeName:   v.ItemTypeName,
		PickupDate:     v.PickupDate(),
		ReturnDate:     v.ReturnDate(),
		SpecialRequest: v.SpecialRequest(),
		Contact:        v.Contact(),
		Cost:           v.Cost(),
		PickupCode:     v.PickupCode(),
		CanCancel:      v.CanCancel,
		CreatedAt:      v.CreatedAt(),
	}
}

func FromBookingOverview(o *usecase.BookingOverview) *BookingOverviewResponse {
	return &BookingOverviewResponse{
		Active:    fromBookingViews(o.Active),
		Completed: fromBookingViews(o.Completed),
		Cancelled: fromBookingViews(o.Cancelled),
	}
}

func fromBookingViews(vs []usecase.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(vs))
	for i := range vs {
		out = append(out, FromBookingView(&vs[i]))
	}
	return out
}
