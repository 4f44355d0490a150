//go:build unit || e2e

package authtest

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// testSigningKey stands in for the backend's key; the storefront only reads claims.
var testSigningKey = []byte("backend-signing-key")

// AccessToken signs claims the way the backend would.
func AccessToken(t *testing.T, claims map[string]any) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims(claims))
	signed, err := token.SignedString(testSigningKey)
	require.NoError(t, err)
	return signed
}

// StaffToken is an access token carrying the is_staff claim.
func StaffToken(t *testing.T, username string) string {
	t.Helper()
	return AccessToken(t, map[string]any{"user_id": 1, "username": username, "is_staff": true, "token_type": "access"})
}

// CustomerToken is an access token without privilege claims.
func CustomerToken(t *testing.T, username string) string {
	t.Helper()
	return AccessToken(t, map[string]any{"user_id": 2, "username": username, "token_type": "access"})
}
