package booking

import (
	"errors"

	"carseat-rental/internal/domain/calendar"
	"carseat-rental/internal/domain/catalog"
	"carseat-rental/internal/domain/money"
)

var (
	ErrInvalidRange  = errors.New("return date must be after pickup date")
	ErrRentalTooLong = errors.New("rental exceeds the maximum length")
)

// MaxRentalDays caps a single booking; longer trips are split into several bookings.
const MaxRentalDays = 90

// CleaningFee is charged once per booking regardless of duration.
var CleaningFee = money.FromCents(995)

type CostBreakdown struct {
	Days        int         `json:"days"`
	DailyRate   money.Money `json:"daily_rate"`
	Subtotal    money.Money `json:"subtotal"`
	CleaningFee money.Money `json:"cleaning_fee"`
	Total       money.Money `json:"total"`
}

func ComputeCost(pickup, ret calendar.Date, item catalog.ItemType) (CostBreakdown, error) {
	days := pickup.DaysUntil(ret)
	if days < 1 {
		return CostBreakdown{}, ErrInvalidRange
	}
	if days > MaxRentalDays {
		return CostBreakdown{}, ErrRentalTooLong
	}
	subtotal := item.DailyRate.Times(days)
	return CostBreakdown{
		Days:        days,
		DailyRate:   item.DailyRate,
		Subtotal:    subtotal,
		CleaningFee: CleaningFee,
		Total:       subtotal.Add(CleaningFee),
	}, nil
}
