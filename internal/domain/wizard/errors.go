package wizard

import (
	"errors"
	"fmt"
)

var (
	ErrValidationRejected     = errors.New("validation rejected")
	ErrWizardLocked           = errors.New("wizard does not accept changes in this state")
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrSubmissionInFlight     = errors.New("submission already in flight")
	ErrInvalidTransition      = errors.New("invalid wizard transition")
	ErrUnknownState           = errors.New("unknown wizard state")
)

// Reasons carried by ValidationError.
const (
	ReasonRequired       = "required"
	ReasonUnknown        = "unknown"
	ReasonUnavailable    = "unavailable"
	ReasonInPast         = "in_past"
	ReasonPickupRequired = "pickup_date_required"
	ReasonNotAfterPickup = "must_be_after_pickup"
	ReasonExceedsMax     = "exceeds_max_rental"
	ReasonTooLong        = "too_long"
	ReasonInvalidEmail   = "invalid_email"
)

// ValidationError names the first unmet gate condition. errors.Is(err, ErrValidationRejected) holds.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation rejected: %s %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationRejected
}

func rejected(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
