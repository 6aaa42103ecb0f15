package wizard

import (
	"fmt"
	"time"

	"carseat-rental/internal/domain/booking"

	"github.com/google/uuid"
)

// Snapshot is the persisted form of a Wizard.
type Snapshot struct {
	ID          uuid.UUID     `json:"id"`
	State       State         `json:"state"`
	Draft       booking.Draft `json:"draft"`
	BookingID   string        `json:"booking_id,omitempty"`
	LastError   *Failure      `json:"last_error,omitempty"`
	Navigation  Navigation    `json:"navigation,omitempty"`
	SubmittedAt *time.Time    `json:"submitted_at,omitempty"`
}

func (w *Wizard) Snapshot() Snapshot {
	var lastErr *Failure
	if w.lastError != nil {
		f := *w.lastError
		lastErr = &f
	}
	draft := w.draft
	if w.draft.Cost != nil {
		c := *w.draft.Cost
		draft.Cost = &c
	}
	var submittedAt *time.Time
	if !w.submittedAt.IsZero() {
		at := w.submittedAt
		submittedAt = &at
	}
	return Snapshot{
		ID:          w.id,
		State:       w.state,
		Draft:       draft,
		BookingID:   w.bookingID,
		LastError:   lastErr,
		Navigation:  w.navigation,
		SubmittedAt: submittedAt,
	}
}

func Restore(s Snapshot, cat Catalog) (*Wizard, error) {
	if !s.State.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownState, s.State)
	}
	if s.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: missing id", ErrUnknownState)
	}
	w := &Wizard{
		id:         s.ID,
		state:      s.State,
		draft:      s.Draft,
		bookingID:  s.BookingID,
		lastError:  s.LastError,
		navigation: s.Navigation,
		catalog:    cat,
	}
	if s.SubmittedAt != nil {
		w.submittedAt = *s.SubmittedAt
	}
	return w, nil
}
