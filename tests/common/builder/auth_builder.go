//go:build unit || e2e

package builder

import (
	reqdto "carseat-rental/internal/handler/dto/request"
)

type AuthBuilder struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		FirstName: "Taylor",
		LastName:  "Rivera",
		Email:     "test@example.com",
		Phone:     "(555) 123-4567",
		Password:  "password123",
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildSignupDTO() reqdto.SignupRequest {
	return reqdto.SignupRequest{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
		Phone:     a.Phone,
		Password:  a.Password,
	}
}
