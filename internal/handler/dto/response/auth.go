package response

import (
	"time"

	"carseat-rental/internal/domain/session"
	"carseat-rental/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SessionResponse struct {
	UserID       uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Phone        string     `json:"phone"`
	WaiverSigned bool       `json:"waiver_signed"`
	WaiverDate   *time.Time `json:"waiver_date,omitempty"`
}

func FromSession(s *session.Session) (*SessionResponse, error) {
	var resp SessionResponse
	if err := copier.Copy(&resp, s); err != nil {
		return nil, errs.Wrap(err, "copy session")
	}
	return &resp, nil
}
