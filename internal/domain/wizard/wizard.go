package wizard

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"carseat-rental/internal/domain/booking"
	"carseat-rental/internal/domain/calendar"
	"carseat-rental/internal/domain/catalog"
	"carseat-rental/internal/domain/session"
	"carseat-rental/internal/domain/user"

	"github.com/google/uuid"
)

// Catalog is the read side the wizard validates selections against.
type Catalog interface {
	Location(id int) (catalog.Location, error)
	ItemType(id catalog.ItemTypeID) (catalog.ItemType, error)
}

// Wizard drives one BookingDraft from trip details to a confirmed booking.
// It is not safe for concurrent use; callers serialize transitions per draft.
type Wizard struct {
	id          uuid.UUID
	state       State
	draft       booking.Draft
	bookingID   string
	lastError   *Failure
	navigation  Navigation
	submittedAt time.Time // set only while submitting
	catalog     Catalog
}

func New(id uuid.UUID, cat Catalog) *Wizard {
	return &Wizard{
		id:      id,
		state:   StateTripDetails,
		catalog: cat,
	}
}

func (w *Wizard) ID() uuid.UUID          { return w.id }
func (w *Wizard) State() State           { return w.state }
func (w *Wizard) Draft() booking.Draft   { return w.draft }
func (w *Wizard) BookingID() string      { return w.bookingID }
func (w *Wizard) LastError() *Failure    { return w.lastError }
func (w *Wizard) Navigation() Navigation { return w.navigation }

// -----------------------------------------------------------------------------
// Field operations
// -----------------------------------------------------------------------------

func (w *Wizard) SelectLocation(id int) error {
	if err := w.beginEdit(); err != nil {
		return err
	}
	loc, err := w.catalog.Location(id)
	if err != nil {
		if errors.Is(err, catalog.ErrLocationNotFound) {
			return rejected("location", ReasonUnknown)
		}
		return err
	}
	if !loc.Available {
		return rejected("location", ReasonUnavailable)
	}
	w.draft.LocationID = loc.ID
	return w.recomputeCost()
}

func (w *Wizard) SelectItemType(id catalog.ItemTypeID) error {
	if err := w.beginEdit(); err != nil {
		return err
	}
	if !id.IsValid() {
		return rejected("item_type", ReasonUnknown)
	}
	if _, err := w.catalog.ItemType(id); err != nil {
		if errors.Is(err, catalog.ErrItemTypeNotFound) {
			return rejected("item_type", ReasonUnknown)
		}
		return err
	}
	w.draft.ItemTypeID = id
	return w.recomputeCost()
}

// SelectPickupDate defaults the return date to the next day only when none was chosen yet.
func (w *Wizard) SelectPickupDate(date, today calendar.Date) error {
	if err := w.beginEdit(); err != nil {
		return err
	}
	if date.IsZero() {
		return rejected("pickup_date", ReasonRequired)
	}
	if date.Before(today) {
		return rejected("pickup_date", ReasonInPast)
	}
	w.draft.PickupDate = date
	if w.draft.ReturnDate.IsZero() {
		w.draft.ReturnDate = date.AddDays(1)
	}
	return w.recomputeCost()
}

func (w *Wizard) SelectReturnDate(date calendar.Date) error {
	if err := w.beginEdit(); err != nil {
		return err
	}
	if w.draft.PickupDate.IsZero() {
		return rejected("return_date", ReasonPickupRequired)
	}
	if date.IsZero() {
		return rejected("return_date", ReasonRequired)
	}
	if !date.After(w.draft.PickupDate) {
		return rejected("return_date", ReasonNotAfterPickup)
	}
	if w.draft.PickupDate.DaysUntil(date) > booking.MaxRentalDays {
		return rejected("return_date", ReasonExceedsMax)
	}
	w.draft.ReturnDate = date
	return w.recomputeCost()
}

func (w *Wizard) SetSpecialRequest(text string) error {
	if err := w.beginEdit(); err != nil {
		return err
	}
	if len(strings.TrimSpace(text)) > booking.MaxSpecialRequestLength {
		return rejected("special_request", ReasonTooLong)
	}
	w.draft.SpecialRequest = text
	return nil
}

func (w *Wizard) SetContactInfo(info booking.ContactInfo) error {
	if err := w.beginEdit(); err != nil {
		return err
	}
	w.draft.Contact = info.Normalize()
	return nil
}

// -----------------------------------------------------------------------------
// Transitions
// -----------------------------------------------------------------------------

// Next advances one step when the current step's gate passes. A nil session means signed out.
func (w *Wizard) Next(sess *session.Session) error {
	w.navigation = NavNone
	switch w.state {
	case StateTripDetails:
		if err := w.tripGate(); err != nil {
			return err
		}
		w.moveTo(StateContactInfo)
		return nil
	case StateContactInfo:
		if sess == nil {
			if field := w.draft.Contact.FirstMissing(); field != "" {
				return rejected(field, ReasonRequired)
			}
			if _, err := user.NewEmail(w.draft.Contact.Email); err != nil {
				return rejected("email", ReasonInvalidEmail)
			}
		}
		w.moveTo(StateReview)
		return nil
	case StateSubmitting, StateConfirmed:
		return ErrWizardLocked
	default:
		return fmt.Errorf("%w: next from %s", ErrInvalidTransition, w.state)
	}
}

// Back moves one step backwards. It is a no-op on the first step.
func (w *Wizard) Back() error {
	w.navigation = NavNone
	switch w.state {
	case StateTripDetails:
		return nil
	case StateContactInfo:
		w.moveTo(StateTripDetails)
		return nil
	case StateReview:
		w.moveTo(StateContactInfo)
		return nil
	case StateSubmitting, StateConfirmed:
		return ErrWizardLocked
	default:
		return fmt.Errorf("%w: back from %s", ErrInvalidTransition, w.state)
	}
}

// BackToTrip returns to trip details keeping every entered field. From failed it discards the failure.
func (w *Wizard) BackToTrip() error {
	w.navigation = NavNone
	switch w.state {
	case StateTripDetails, StateContactInfo, StateReview, StateFailed:
		w.moveTo(StateTripDetails)
		return nil
	default:
		return ErrWizardLocked
	}
}

// BeginSubmit moves review to submitting and hands back the draft and contact to submit.
// Without a session it signals a redirect to authentication and leaves the state alone.
func (w *Wizard) BeginSubmit(sess *session.Session, now time.Time) (booking.Draft, booking.ContactInfo, error) {
	w.navigation = NavNone
	switch w.state {
	case StateReview:
	case StateSubmitting:
		return booking.Draft{}, booking.ContactInfo{}, ErrSubmissionInFlight
	default:
		return booking.Draft{}, booking.ContactInfo{}, fmt.Errorf("%w: submit from %s", ErrInvalidTransition, w.state)
	}

	if sess == nil {
		w.navigation = NavAuthentication
		return booking.Draft{}, booking.ContactInfo{}, ErrAuthenticationRequired
	}
	if err := w.tripGate(); err != nil {
		return booking.Draft{}, booking.ContactInfo{}, err
	}

	contact := w.draft.Contact
	if !contact.IsComplete() {
		contact = sess.Contact()
	}

	w.moveTo(StateSubmitting)
	w.submittedAt = now
	return w.draft, contact, nil
}

// SubmissionStale reports whether a submission begun more than limit before now never recorded
// an outcome. A submitting wizard without a start time counts as stale.
func (w *Wizard) SubmissionStale(now time.Time, limit time.Duration) bool {
	if w.state != StateSubmitting {
		return false
	}
	return w.submittedAt.IsZero() || now.Sub(w.submittedAt) > limit
}

func (w *Wizard) CompleteSubmission(bookingID string) error {
	if w.state != StateSubmitting {
		return fmt.Errorf("%w: complete from %s", ErrInvalidTransition, w.state)
	}
	w.moveTo(StateConfirmed)
	w.bookingID = bookingID
	w.navigation = NavBookingsOverview
	return nil
}

func (w *Wizard) FailSubmission(reason string, retryable bool) error {
	if w.state != StateSubmitting {
		return fmt.Errorf("%w: fail from %s", ErrInvalidTransition, w.state)
	}
	w.moveTo(StateFailed)
	w.lastError = &Failure{Reason: reason, Retryable: retryable}
	return nil
}

// TimeoutSubmission returns to review so the user can submit again.
func (w *Wizard) TimeoutSubmission() error {
	if w.state != StateSubmitting {
		return fmt.Errorf("%w: timeout from %s", ErrInvalidTransition, w.state)
	}
	w.moveTo(StateReview)
	w.lastError = &Failure{Reason: "submission timed out", Retryable: true}
	return nil
}

func (w *Wizard) Retry() error {
	w.navigation = NavNone
	if w.state != StateFailed || w.lastError == nil || !w.lastError.Retryable {
		return fmt.Errorf("%w: retry from %s", ErrInvalidTransition, w.state)
	}
	w.moveTo(StateReview)
	return nil
}

// -----------------------------------------------------------------------------
// internals
// -----------------------------------------------------------------------------

func (w *Wizard) beginEdit() error {
	w.navigation = NavNone
	if !w.state.editable() {
		return ErrWizardLocked
	}
	return nil
}

func (w *Wizard) moveTo(s State) {
	w.state = s
	w.lastError = nil
	w.submittedAt = time.Time{}
}

func (w *Wizard) tripGate() error {
	d := w.draft
	switch {
	case d.LocationID == 0:
		return rejected("location", ReasonRequired)
	case d.ItemTypeID == "":
		return rejected("item_type", ReasonRequired)
	case d.PickupDate.IsZero():
		return rejected("pickup_date", ReasonRequired)
	case d.ReturnDate.IsZero():
		return rejected("return_date", ReasonRequired)
	case !d.ReturnDate.After(d.PickupDate):
		return rejected("return_date", ReasonNotAfterPickup)
	case !d.WithinRentalLimit():
		return rejected("return_date", ReasonExceedsMax)
	}
	return nil
}

func (w *Wizard) recomputeCost() error {
	w.draft.Cost = nil
	if !w.draft.TripComplete() {
		return nil
	}
	item, err := w.catalog.ItemType(w.draft.ItemTypeID)
	if err != nil {
		return err
	}
	cost, err := booking.ComputeCost(w.draft.PickupDate, w.draft.ReturnDate, item)
	if err != nil {
		// ordered dates are checked above, so this is a broken invariant
		return fmt.Errorf("recompute cost: %w", err)
	}
	w.draft.Cost = &cost
	return nil
}
