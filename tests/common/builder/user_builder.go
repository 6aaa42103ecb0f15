//go:build unit || e2e

package builder

import (
	"time"

	"carseat-rental/internal/domain/session"
	"carseat-rental/internal/domain/user"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        string
	WaiverSigned bool
	Now          time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		FirstName:    "Taylor",
		LastName:     "Rivera",
		Phone:        "(555) 123-4567",
		Now:          time.Date(2024, 8, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, u.PasswordHash, u.FirstName, u.LastName, u.Phone, u.Now)
}

// BuildStored is a user as read back from the database, keeping the builder's ID.
func (u *UserBuilder) BuildStored() *user.User {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		panic(err)
	}
	waiver := user.UnsignedWaiver()
	if u.WaiverSigned {
		waiver = user.SignedWaiver(u.Now)
	}
	return user.ReconstructUser(u.ID, email, u.PasswordHash, u.FirstName, u.LastName, u.Phone, waiver, u.Now, u.Now)
}

func (u *UserBuilder) BuildSession() session.Session {
	s := session.Session{
		UserID:       u.ID,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Phone:        u.Phone,
		WaiverSigned: u.WaiverSigned,
		IssuedAt:     u.Now,
	}
	if u.WaiverSigned {
		at := u.Now
		s.WaiverDate = &at
	}
	return s
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithName(first, last string) *UserBuilder {
	u.FirstName, u.LastName = first, last
	return u
}

func (u *UserBuilder) WithPhone(phone string) *UserBuilder {
	u.Phone = phone
	return u
}

func (u *UserBuilder) WithWaiverSigned() *UserBuilder {
	u.WaiverSigned = true
	return u
}
