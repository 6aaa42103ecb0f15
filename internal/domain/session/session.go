package session

import (
	"time"

	"carseat-rental/internal/domain/booking"

	"github.com/google/uuid"
)

// Session is the signed-in identity of one client. At most one exists per client.
type Session struct {
	UserID       uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Phone        string     `json:"phone"`
	WaiverSigned bool       `json:"waiver_signed"`
	WaiverDate   *time.Time `json:"waiver_date,omitempty"`
	IssuedAt     time.Time  `json:"issued_at"`
}

// Valid rejects records that decoded but carry no identity.
func (s Session) Valid() bool {
	return s.UserID != uuid.Nil && s.Email != ""
}

// Contact is the contact info a signed-in user books with.
func (s Session) Contact() booking.ContactInfo {
	return booking.ContactInfo{
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Email:     s.Email,
		Phone:     s.Phone,
	}
}
