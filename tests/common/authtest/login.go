//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"beautyverse-storefront/internal/handler/dto/request"
	"beautyverse-storefront/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginClient logs a fresh browser in and returns its client cookie.
func LoginClient(t *testing.T, router *gin.Engine, cookieName, username, password string) []*http.Cookie {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Username: username, Password: password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	clientCookie := httptest.AssertClientCookie(t, w, cookieName)
	return []*http.Cookie{clientCookie}
}

func LogoutClient(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
