package usecase

//go:generate mockgen -source=$GOFILE -destination=../../tests/mock/usecase/$GOFILE -package=usecasemock

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"carseat-rental/internal/domain/booking"
	"carseat-rental/internal/domain/calendar"
	"carseat-rental/internal/domain/catalog"
	"carseat-rental/internal/domain/session"
	"carseat-rental/internal/domain/wizard"
	"carseat-rental/internal/pkg/clock"
	"carseat-rental/internal/pkg/config"
	"carseat-rental/internal/pkg/errs"
	"carseat-rental/internal/pkg/patch"

	"github.com/google/uuid"
)

var ErrSubmissionTimeout = errors.New("booking submission timed out")

const (
	settleLockAttempts = 20
	settleLockBackoff  = 50 * time.Millisecond
)

// TripUpdate carries the trip fields to change. Nil fields are left alone.
type TripUpdate struct {
	LocationID     *int
	ItemTypeID     *catalog.ItemTypeID
	PickupDate     *calendar.Date
	ReturnDate     *calendar.Date
	SpecialRequest *string
}

// ContactUpdate carries the contact fields to change. Nil fields are left alone.
type ContactUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
}

type WizardView struct {
	wizard.Snapshot
	Step int
}

type WizardUseCase interface {
	Start(ctx context.Context, clientID uuid.UUID) (*WizardView, error)
	Get(ctx context.Context, clientID, draftID uuid.UUID) (*WizardView, error)
	UpdateTrip(ctx context.Context, clientID, draftID uuid.UUID, in TripUpdate) (*WizardView, error)
	UpdateContact(ctx context.Context, clientID, draftID uuid.UUID, in ContactUpdate) (*WizardView, error)
	Next(ctx context.Context, clientID uuid.UUID, sess *session.Session, draftID uuid.UUID) (*WizardView, error)
	Back(ctx context.Context, clientID, draftID uuid.UUID) (*WizardView, error)
	EditTrip(ctx context.Context, clientID, draftID uuid.UUID) (*WizardView, error)
	Submit(ctx context.Context, clientID uuid.UUID, sess *session.Session, draftID uuid.UUID) (*WizardView, error)
	Retry(ctx context.Context, clientID, draftID uuid.UUID) (*WizardView, error)
}

type wizardUseCaseImpl struct {
	drafts        DraftStore
	catalog       CatalogProvider
	submitter     BookingSubmitter
	clock         clock.Clock
	submitTimeout time.Duration
	staleAfter    time.Duration // longest a draft may stay submitting without a recorded outcome
}

func NewWizardUseCase(
	drafts DraftStore,
	catalog CatalogProvider,
	submitter BookingSubmitter,
	clk clock.Clock,
	cfg config.Config,
) WizardUseCase {
	return &wizardUseCaseImpl{
		drafts:        drafts,
		catalog:       catalog,
		submitter:     submitter,
		clock:         clk,
		submitTimeout: cfg.Booking.SubmitTimeout,
		staleAfter:    cfg.Booking.SubmitTimeout + cfg.Session.DraftLockTTL,
	}
}

func (u *wizardUseCaseImpl) Start(ctx context.Context, clientID uuid.UUID) (*WizardView, error) {
	w := wizard.New(uuid.New(), bindCatalog(ctx, u.catalog))
	snap := w.Snapshot()
	if err := u.drafts.Save(ctx, clientID, snap); err != nil {
		return nil, errs.Wrap(err, "save new draft")
	}
	slog.Info("Booking draft started", "draft_id", snap.ID, "client_id", clientID)
	return newWizardView(snap), nil
}

func (u *wizardUseCaseImpl) Get(ctx context.Context, clientID, draftID uuid.UUID) (*WizardView, error) {
	w, err := u.load(ctx, clientID, draftID)
	if err != nil {
		return nil, err
	}
	if _, err := u.recoverStale(w, clientID); err != nil {
		return nil, err
	}
	return newWizardView(w.Snapshot()), nil
}

// UpdateTrip applies the fields in form order. A rejected field discards the whole update.
func (u *wizardUseCaseImpl) UpdateTrip(ctx context.Context, clientID, draftID uuid.UUID, in TripUpdate) (*WizardView, error) {
	today := u.today()
	return u.transition(ctx, clientID, draftID, func(w *wizard.Wizard) error {
		if in.LocationID != nil {
			if err := w.SelectLocation(*in.LocationID); err != nil {
				return err
			}
		}
		if in.ItemTypeID != nil {
			if err := w.SelectItemType(*in.ItemTypeID); err != nil {
				return err
			}
		}
		if in.PickupDate != nil {
			if err := w.SelectPickupDate(*in.PickupDate, today); err != nil {
				return err
			}
		}
		if in.ReturnDate != nil {
			if err := w.SelectReturnDate(*in.ReturnDate); err != nil {
				return err
			}
		}
		if in.SpecialRequest != nil {
			if err := w.SetSpecialRequest(*in.SpecialRequest); err != nil {
				return err
			}
		}
		return nil
	})
}

func (u *wizardUseCaseImpl) UpdateContact(ctx context.Context, clientID, draftID uuid.UUID, in ContactUpdate) (*WizardView, error) {
	return u.transition(ctx, clientID, draftID, func(w *wizard.Wizard) error {
		contact := w.Draft().Contact
		patch.Apply(&contact.FirstName, in.FirstName)
		patch.Apply(&contact.LastName, in.LastName)
		patch.Apply(&contact.Email, in.Email)
		patch.Apply(&contact.Phone, in.Phone)
		return w.SetContactInfo(contact)
	})
}

func (u *wizardUseCaseImpl) Next(ctx context.Context, clientID uuid.UUID, sess *session.Session, draftID uuid.UUID) (*WizardView, error) {
	return u.transition(ctx, clientID, draftID, func(w *wizard.Wizard) error {
		return w.Next(sess)
	})
}

func (u *wizardUseCaseImpl) Back(ctx context.Context, clientID, draftID uuid.UUID) (*WizardView, error) {
	return u.transition(ctx, clientID, draftID, func(w *wizard.Wizard) error {
		return w.Back()
	})
}

func (u *wizardUseCaseImpl) EditTrip(ctx context.Context, clientID, draftID uuid.UUID) (*WizardView, error) {
	return u.transition(ctx, clientID, draftID, func(w *wizard.Wizard) error {
		return w.BackToTrip()
	})
}

func (u *wizardUseCaseImpl) Retry(ctx context.Context, clientID, draftID uuid.UUID) (*WizardView, error) {
	return u.transition(ctx, clientID, draftID, func(w *wizard.Wizard) error {
		return w.Retry()
	})
}

// Submit persists the submitting state, calls the submitter without holding the draft lock
// and then records the outcome. A view is returned alongside submission errors.
func (u *wizardUseCaseImpl) Submit(ctx context.Context, clientID uuid.UUID, sess *session.Session, draftID uuid.UUID) (*WizardView, error) {
	var req SubmissionRequest
	view, err := u.transition(ctx, clientID, draftID, func(w *wizard.Wizard) error {
		draft, contact, err := w.BeginSubmit(sess, u.clock.Now())
		if err != nil {
			return err
		}
		req = SubmissionRequest{
			DraftID: draftID,
			UserID:  sess.UserID,
			Draft:   draft,
			Contact: contact,
		}
		return nil
	})
	if err != nil {
		return view, err
	}

	subCtx, cancel := context.WithTimeout(ctx, u.submitTimeout)
	defer cancel()
	started := u.clock.Now()
	b, subErr := u.submitter.Submit(subCtx, req)

	slog.Info("Booking submission finished",
		"draft_id", draftID,
		"user_id", req.UserID,
		"elapsed", u.clock.Now().Sub(started),
		"error", subErr,
	)

	// the request may be gone by now; the outcome still has to be recorded
	return u.settle(context.WithoutCancel(ctx), clientID, draftID, b, subErr)
}

func (u *wizardUseCaseImpl) settle(ctx context.Context, clientID, draftID uuid.UUID, b *booking.Booking, subErr error) (*WizardView, error) {
	unlock, err := u.lockWithRetry(ctx, draftID)
	if err != nil {
		return nil, errs.Wrap(err, "lock draft to record submission outcome")
	}
	defer unlock()

	w, err := u.load(ctx, clientID, draftID)
	if err != nil {
		return nil, err
	}

	var result error
	switch {
	case subErr == nil:
		err = w.CompleteSubmission(b.ID())
	case errors.Is(subErr, context.DeadlineExceeded):
		err = w.TimeoutSubmission()
		result = ErrSubmissionTimeout
	case errors.Is(subErr, context.Canceled):
		err = w.FailSubmission("submission cancelled", true)
		result = subErr
	case errors.Is(subErr, ErrSubmissionRejected):
		err = w.FailSubmission(subErr.Error(), false)
		result = subErr
	case errors.Is(subErr, ErrSubmissionNetwork), errors.Is(subErr, ErrInventoryExhausted):
		err = w.FailSubmission(subErr.Error(), true)
		result = subErr
	default:
		slog.Error("Unexpected submission failure", "draft_id", draftID, "error", subErr)
		err = w.FailSubmission("unexpected error while submitting", true)
		result = errs.Mark(subErr, ErrSubmissionNetwork)
	}
	if err != nil {
		return nil, errs.Wrap(err, "record submission outcome")
	}

	snap := w.Snapshot()
	if err := u.drafts.Save(ctx, clientID, snap); err != nil {
		return nil, errs.Wrap(err, "save draft")
	}
	return newWizardView(snap), result
}

// transition runs fn on the locked draft and saves it only when fn succeeds.
// On failure the unsaved view is still returned so callers can surface navigation signals.
func (u *wizardUseCaseImpl) transition(ctx context.Context, clientID, draftID uuid.UUID, fn func(w *wizard.Wizard) error) (*WizardView, error) {
	unlock, err := u.drafts.Lock(ctx, draftID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	w, err := u.load(ctx, clientID, draftID)
	if err != nil {
		return nil, err
	}
	recovered, err := u.recoverStale(w, clientID)
	if err != nil {
		return nil, err
	}
	if recovered {
		if err := u.drafts.Save(ctx, clientID, w.Snapshot()); err != nil {
			return nil, errs.Wrap(err, "save recovered draft")
		}
	}

	if err := fn(w); err != nil {
		if errors.Is(err, booking.ErrInvalidRange) {
			slog.Error("Cost computed for unordered dates", "draft_id", draftID, "error", err)
		}
		return newWizardView(w.Snapshot()), err
	}

	snap := w.Snapshot()
	if err := u.drafts.Save(ctx, clientID, snap); err != nil {
		return nil, errs.Wrap(err, "save draft")
	}
	return newWizardView(snap), nil
}

func (u *wizardUseCaseImpl) load(ctx context.Context, clientID, draftID uuid.UUID) (*wizard.Wizard, error) {
	snap, err := u.drafts.Load(ctx, clientID, draftID)
	if err != nil {
		return nil, err
	}
	w, err := wizard.Restore(*snap, bindCatalog(ctx, u.catalog))
	if err != nil {
		return nil, errs.Wrap(err, "restore draft")
	}
	return w, nil
}

// recoverStale sends a draft whose submission outcome was never recorded back to review.
func (u *wizardUseCaseImpl) recoverStale(w *wizard.Wizard, clientID uuid.UUID) (bool, error) {
	if !w.SubmissionStale(u.clock.Now(), u.staleAfter) {
		return false, nil
	}
	if err := w.TimeoutSubmission(); err != nil {
		return false, errs.Wrap(err, "recover stale submission")
	}
	slog.Warn("Stale booking submission returned to review", "draft_id", w.ID(), "client_id", clientID)
	return true, nil
}

func (u *wizardUseCaseImpl) lockWithRetry(ctx context.Context, draftID uuid.UUID) (func(), error) {
	var lastErr error
	for range settleLockAttempts {
		unlock, err := u.drafts.Lock(ctx, draftID)
		if err == nil {
			return unlock, nil
		}
		if !errors.Is(err, ErrDraftBusy) {
			return nil, err
		}
		lastErr = err
		time.Sleep(settleLockBackoff)
	}
	return nil, lastErr
}

func (u *wizardUseCaseImpl) today() calendar.Date {
	return calendar.DateOf(clock.Today(u.clock))
}

func newWizardView(s wizard.Snapshot) *WizardView {
	return &WizardView{Snapshot: s, Step: s.State.Step()}
}
