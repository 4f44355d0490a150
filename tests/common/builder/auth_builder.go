//go:build unit || e2e

package builder

import (
	reqdto "beautyverse-storefront/internal/handler/dto/request"
)

type AuthBuilder struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Username:  "aline",
		Email:     "aline@example.com",
		Password:  "password123",
		FirstName: "Aline",
		LastName:  "Uwase",
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Username: a.Username,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Username:        a.Username,
		Email:           a.Email,
		Password:        a.Password,
		ConfirmPassword: a.Password,
		FirstName:       a.FirstName,
		LastName:        a.LastName,
	}
}
