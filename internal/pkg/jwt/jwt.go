// Package jwt reads the identity claims out of backend-issued access tokens.
//
// The backend signs tokens with a key this service never sees, so claims are
// parsed without verification and only used as display hints (username,
// privilege flags) when the login payload has none. Every authorization
// decision that matters is still made by the backend on each call.
package jwt

import (
	"errors"
	"strings"

	"beautyverse-storefront/internal/pkg/ident"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	UserID      ident.ID `json:"user_id"`
	Username    string   `json:"username,omitempty"`
	TokenType   string   `json:"token_type,omitempty"`
	IsStaff     bool     `json:"is_staff,omitempty"`
	IsSuperuser bool     `json:"is_superuser,omitempty"`
	IsAdmin     bool     `json:"is_admin,omitempty"`
	jwt.RegisteredClaims
}

// Privileged is true when any of the backend's admin flags is set.
func (c *Claims) Privileged() bool {
	return c.IsStaff || c.IsSuperuser || c.IsAdmin
}

var parser = jwt.NewParser()

func ParseUnverified(token string) (*Claims, error) {
	token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
	if token == "" {
		return nil, ErrInvalidToken
	}
	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
