package middleware

import (
	"net/http"

	"beautyverse-storefront/internal/handler/httperr"
	"beautyverse-storefront/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	ctxClientIDKey = "client_id"
	ctxUsernameKey = "username"
)

// RequireAuth must run after ClientMiddleware.Attach.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sf, ok := RequireStorefront(c)
		if !ok {
			return
		}

		id, ok := sf.Session.Current()
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrNotAuthenticated, "Please log in to continue", nil)
			return
		}

		c.Set(ctxUsernameKey, id.Username)
		c.Next()
	}
}

// RequireAdmin checks the persisted admin flag; it implies RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sf, ok := RequireStorefront(c)
		if !ok {
			return
		}

		id, ok := sf.Session.Current()
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrNotAuthenticated, "Please log in to continue", nil)
			return
		}
		if !id.IsAdmin {
			httperr.AbortWithError(c, http.StatusForbidden, errs.ErrForbidden, "Admin access required", nil)
			return
		}

		c.Set(ctxUsernameKey, id.Username)
		c.Next()
	}
}

func GetUsername(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxUsernameKey)
	if !exists {
		return "", false
	}
	name, ok := v.(string)
	return name, ok
}
