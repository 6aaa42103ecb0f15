package response

import (
	"carseat-rental/internal/domain/booking"
	"carseat-rental/internal/domain/wizard"
	"carseat-rental/internal/usecase"

	"github.com/google/uuid"
)

type DraftResponse struct {
	ID         uuid.UUID       `json:"id"`
	State      wizard.State    `json:"state"`
	Step       int             `json:"step"`
	Draft      booking.Draft   `json:"draft"`
	BookingID  string          `json:"booking_id,omitempty"`
	LastError  *wizard.Failure `json:"last_error,omitempty"`
	Navigation string          `json:"navigation,omitempty"`
}

type SubmitResponse struct {
	BookingID string         `json:"booking_id"`
	Navigate  string         `json:"navigate"`
	Draft     *DraftResponse `json:"draft"`
}

func FromWizardView(v *usecase.WizardView) *DraftResponse {
	return &DraftResponse{
		ID:         v.ID,
		State:      v.State,
		Step:       v.Step,
		Draft:      v.Draft,
		BookingID:  v.BookingID,
		LastError:  v.LastError,
		Navigation: string(v.Navigation),
	}
}

func FromSubmittedView(v *usecase.WizardView) *SubmitResponse {
	return &SubmitResponse{
		BookingID: v.BookingID,
		Navigate:  string(v.Navigation),
		Draft:     FromWizardView(v),
	}
}
