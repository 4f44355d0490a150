// Package identity describes who the current client is logged in as.
package identity

import "strings"

// Persisted keys owned by the session.
const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
	UsernameKey     = "username"
	IsAdminKey      = "is_admin"
)

// Keys lists every key cleared on logout.
var Keys = []string{AccessTokenKey, RefreshTokenKey, UsernameKey, IsAdminKey}

type Identity struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// UserPayload is the optional user object of the login response.
type UserPayload struct {
	Username    string `json:"username,omitempty"`
	Email       string `json:"email,omitempty"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	IsStaff     *bool  `json:"is_staff,omitempty"`
	IsSuperuser *bool  `json:"is_superuser,omitempty"`
	IsAdmin     *bool  `json:"is_admin,omitempty"`
}

// Flagged reports the privilege the payload states, and whether it states any.
func (u *UserPayload) Flagged() (privileged, stated bool) {
	if u == nil {
		return false, false
	}
	for _, f := range []*bool{u.IsStaff, u.IsSuperuser, u.IsAdmin} {
		if f == nil {
			continue
		}
		stated = true
		privileged = privileged || *f
	}
	return privileged, stated
}

// ClaimSource is what a parsed access token offers as a privilege fallback.
type ClaimSource interface {
	Privileged() bool
}

// ResolvePrivilege prefers the login payload's flags and falls back to token
// claims. The username is never consulted.
func ResolvePrivilege(user *UserPayload, claims ClaimSource) bool {
	if privileged, stated := user.Flagged(); stated {
		return privileged
	}
	if claims != nil {
		return claims.Privileged()
	}
	return false
}

// ResolveUsername picks the server's spelling when it sends one.
func ResolveUsername(submitted string, user *UserPayload) string {
	if user != nil && strings.TrimSpace(user.Username) != "" {
		return user.Username
	}
	return strings.TrimSpace(submitted)
}

func FormatFlag(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func ParseFlag(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}
