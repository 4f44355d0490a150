package middleware

import (
	"log/slog"
	"net/http"

	"beautyverse-storefront/internal/handler/httperr"
	"beautyverse-storefront/internal/pkg/config"
	"beautyverse-storefront/internal/pkg/cookie"
	"beautyverse-storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxStorefrontKey = "storefront"

// ClientMiddleware resolves the bv_client cookie to that browser's stores.
type ClientMiddleware struct {
	storefronts usecase.Storefronts
	cfg         config.CookieConfig
}

func NewClientMiddleware(storefronts usecase.Storefronts, cfg config.Config) *ClientMiddleware {
	return &ClientMiddleware{
		storefronts: storefronts,
		cfg:         cfg.Cookie,
	}
}

// Attach issues a fresh client id when the cookie is missing.
func (m *ClientMiddleware) Attach() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID := cookie.GetClientID(c, m.cfg)
		if clientID == "" {
			clientID = uuid.NewString()
		}
		// refresh on every request so MaxAge is a sliding window
		cookie.SetClientID(c, m.cfg, clientID)

		sf, err := m.storefronts.Open(c.Request.Context(), clientID)
		if err != nil {
			slog.Error("failed to open storefront", "client_id", clientID, "error", err)
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load session", nil)
			return
		}

		c.Set(ctxStorefrontKey, sf)
		c.Set(ctxClientIDKey, clientID)
		c.Next()
	}
}

func GetStorefront(c *gin.Context) (*usecase.Storefront, bool) {
	v, exists := c.Get(ctxStorefrontKey)
	if !exists {
		return nil, false
	}
	sf, ok := v.(*usecase.Storefront)
	return sf, ok && sf != nil
}

// RequireStorefront aborts with 500 when Attach did not run; handlers call it first.
func RequireStorefront(c *gin.Context) (*usecase.Storefront, bool) {
	sf, ok := GetStorefront(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return nil, false
	}
	return sf, true
}
