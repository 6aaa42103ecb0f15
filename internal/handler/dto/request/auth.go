package request

import (
	"carseat-rental/internal/domain/user"
	"carseat-rental/internal/usecase"
)

type SignupRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	Password  string `json:"password" binding:"required,min=8"`
}

func (r *SignupRequest) ToInput() usecase.SignupInput {
	return usecase.SignupInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Password:  r.Password,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Email, r.Password)
}

// WaiverRequest mirrors the two checkboxes on the waiver form.
type WaiverRequest struct {
	HasRead bool `json:"has_read"`
	Agrees  bool `json:"agrees"`
}
