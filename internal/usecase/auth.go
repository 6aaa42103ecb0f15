package usecase

//go:generate mockgen -source=$GOFILE -destination=../../tests/mock/usecase/$GOFILE -package=usecasemock

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"carseat-rental/internal/domain/session"
	"carseat-rental/internal/domain/user"
	"carseat-rental/internal/infra"
	"carseat-rental/internal/pkg/clock"
	"carseat-rental/internal/pkg/errs"
	"carseat-rental/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken             = errors.New("an account with this email already exists")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrNotAuthenticated       = errors.New("not signed in")
	ErrWaiverTermsNotAccepted = errors.New("waiver must be read and accepted")
	ErrUserNotFound           = errors.New("user not found")
)

type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
}

type AuthUseCase interface {
	Signup(ctx context.Context, clientID uuid.UUID, in SignupInput) (*session.Session, error)
	Login(ctx context.Context, clientID uuid.UUID, credentials user.Credentials) (*session.Session, error)
	Logout(ctx context.Context, clientID uuid.UUID) error
	Me(ctx context.Context, sess *session.Session) (*session.Session, error)
	SignWaiver(ctx context.Context, clientID uuid.UUID, sess *session.Session, hasRead, agrees bool) (*session.Session, error)
}

type authUseCaseImpl struct {
	userRepo UserRepository
	sessions SessionStore
	hasher   *password.Hasher
	clock    clock.Clock
}

func NewAuthUseCase(userRepo UserRepository, sessions SessionStore, hasher *password.Hasher, clk clock.Clock) AuthUseCase {
	return &authUseCaseImpl{
		userRepo: userRepo,
		sessions: sessions,
		hasher:   hasher,
		clock:    clk,
	}
}

func (a *authUseCaseImpl) Signup(ctx context.Context, clientID uuid.UUID, in SignupInput) (*session.Session, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if _, err := user.NewPassword(in.Password); err != nil {
		return nil, err
	}

	existing, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Wrap(err, "lookup email")
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := a.hasher.Hash(in.Password)
	if err != nil {
		return nil, errs.Wrap(err, "hash password")
	}

	u, err := user.NewUser(email, hash, in.FirstName, in.LastName, in.Phone, a.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := a.userRepo.Create(ctx, u); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, errs.Wrap(err, "create user")
	}

	slog.Info("User signed up", "user_id", u.ID(), "client_id", clientID)
	return a.startSession(ctx, clientID, u)
}

func (a *authUseCaseImpl) Login(ctx context.Context, clientID uuid.UUID, credentials user.Credentials) (*session.Session, error) {
	u, err := a.userRepo.FindByEmail(ctx, credentials.Email())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Wrap(err, "lookup user")
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := a.hasher.Compare(u.PasswordHash(), credentials.Password()); err != nil {
		return nil, ErrInvalidCredentials
	}
	return a.startSession(ctx, clientID, u)
}

func (a *authUseCaseImpl) Logout(ctx context.Context, clientID uuid.UUID) error {
	if err := a.sessions.Clear(ctx, clientID); err != nil {
		return errs.Wrap(err, "clear session")
	}
	return nil
}

func (a *authUseCaseImpl) Me(_ context.Context, sess *session.Session) (*session.Session, error) {
	if sess == nil {
		return nil, ErrNotAuthenticated
	}
	return sess, nil
}

func (a *authUseCaseImpl) SignWaiver(ctx context.Context, clientID uuid.UUID, sess *session.Session, hasRead, agrees bool) (*session.Session, error) {
	if sess == nil {
		return nil, ErrNotAuthenticated
	}

	u, err := a.userRepo.FindByID(ctx, sess.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Wrap(err, "load user")
	}

	if err := u.SignWaiver(hasRead, agrees, a.clock.Now()); err != nil {
		if errors.Is(err, user.ErrWaiverTermsNotAccepted) {
			return nil, ErrWaiverTermsNotAccepted
		}
		return nil, err
	}
	if err := a.userRepo.UpdateWaiver(ctx, u); err != nil {
		return nil, errs.Wrap(err, "persist waiver")
	}

	return a.startSession(ctx, clientID, u)
}

func (a *authUseCaseImpl) startSession(ctx context.Context, clientID uuid.UUID, u *user.User) (*session.Session, error) {
	sess := SessionFromUser(u, a.clock.Now())
	if err := a.sessions.Save(ctx, clientID, sess); err != nil {
		return nil, errs.Wrap(err, "save session")
	}
	return &sess, nil
}

func SessionFromUser(u *user.User, issuedAt time.Time) session.Session {
	return session.Session{
		UserID:       u.ID(),
		Email:        u.Email().Value(),
		FirstName:    u.FirstName(),
		LastName:     u.LastName(),
		Phone:        u.Phone(),
		WaiverSigned: u.Waiver().Signed(),
		WaiverDate:   u.Waiver().SignedAt(),
		IssuedAt:     issuedAt,
	}
}
