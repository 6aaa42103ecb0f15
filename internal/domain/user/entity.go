package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName              = errors.New("first and last name are required")
	ErrEmptyPhone             = errors.New("phone is required")
	ErrWaiverTermsNotAccepted = errors.New("waiver must be read and accepted")
)

type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	firstName    string
	lastName     string
	phone        string
	waiver       Waiver
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, passwordHash, firstName, lastName, phone string, now time.Time) (*User, error) {
	firstName, lastName, phone = strings.TrimSpace(firstName), strings.TrimSpace(lastName), strings.TrimSpace(phone)
	if firstName == "" || lastName == "" {
		return nil, ErrEmptyName
	}
	if phone == "" {
		return nil, ErrEmptyPhone
	}
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		firstName:    firstName,
		lastName:     lastName,
		phone:        phone,
		waiver:       UnsignedWaiver(),
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	passwordHash, firstName, lastName, phone string,
	waiver Waiver,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		firstName:    firstName,
		lastName:     lastName,
		phone:        phone,
		waiver:       waiver,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// SignWaiver requires both the read and the agree checkbox.
func (u *User) SignWaiver(hasRead, agrees bool, now time.Time) error {
	if !hasRead || !agrees {
		return ErrWaiverTermsNotAccepted
	}
	u.waiver = SignedWaiver(now)
	u.updatedAt = now
	return nil
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) FirstName() string    { return u.firstName }
func (u *User) LastName() string     { return u.lastName }
func (u *User) Phone() string        { return u.phone }
func (u *User) Waiver() Waiver       { return u.waiver }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
