package usecase

//go:generate mockgen -source=$GOFILE -destination=../../tests/mock/usecase/$GOFILE -package=usecasemock

import (
	"context"
	"errors"

	"carseat-rental/internal/domain/booking"
	"carseat-rental/internal/domain/calendar"
	"carseat-rental/internal/domain/catalog"
	"carseat-rental/internal/domain/session"
	"carseat-rental/internal/domain/user"
	"carseat-rental/internal/domain/wizard"

	"github.com/google/uuid"
)

// Errors produced by the ports below.
var (
	ErrDraftNotFound = errors.New("booking draft not found")
	ErrDraftBusy     = errors.New("booking draft is being modified by another request")

	// Submission failures. Network and inventory failures may be retried.
	ErrSubmissionNetwork  = errors.New("submission failed: network error")
	ErrSubmissionRejected = errors.New("submission rejected by server-side validation")
	ErrInventoryExhausted = errors.New("no seats of this type left at the location for these dates")
)

// SessionStore keeps at most one Session per client. Load returns nil, nil when none is stored.
type SessionStore interface {
	Load(ctx context.Context, clientID uuid.UUID) (*session.Session, error)
	Save(ctx context.Context, clientID uuid.UUID, s session.Session) error
	Clear(ctx context.Context, clientID uuid.UUID) error
}

// DraftStore persists wizard snapshots per client and serializes transitions on a draft.
type DraftStore interface {
	Load(ctx context.Context, clientID, draftID uuid.UUID) (*wizard.Snapshot, error)
	Save(ctx context.Context, clientID uuid.UUID, snap wizard.Snapshot) error
	Lock(ctx context.Context, draftID uuid.UUID) (unlock func(), err error)
}

type CatalogProvider interface {
	ListLocations(ctx context.Context) ([]catalog.Location, error)
	ListItemTypes(ctx context.Context) ([]catalog.ItemType, error)
	FindLocation(ctx context.Context, id int) (catalog.Location, error)
	FindItemType(ctx context.Context, id catalog.ItemTypeID) (catalog.ItemType, error)
}

type SubmissionRequest struct {
	DraftID uuid.UUID
	UserID  uuid.UUID
	Draft   booking.Draft
	Contact booking.ContactInfo
}

// BookingSubmitter turns a reviewed draft into a persisted Booking. Implementations honour ctx cancellation.
type BookingSubmitter interface {
	Submit(ctx context.Context, req SubmissionRequest) (*booking.Booking, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	UpdateWaiver(ctx context.Context, u *user.User) error
}

type BookingRepository interface {
	// UpdateStatus persists b's status only if the stored row still has status from.
	UpdateStatus(ctx context.Context, b *booking.Booking, from booking.Status) error
	CompleteDue(ctx context.Context, today calendar.Date) (int64, error)
}

type BookingReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*booking.Booking, error)
	FindForUser(ctx context.Context, userID uuid.UUID, id string) (*booking.Booking, error)
}
