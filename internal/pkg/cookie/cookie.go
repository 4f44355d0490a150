package cookie

import (
	"net/http"

	"beautyverse-storefront/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// SetClientID issues the HTTP-only cookie that keys a browser's persisted state.
func SetClientID(c *gin.Context, cfg config.CookieConfig, clientID string) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		cfg.Name,
		clientID,
		int(cfg.MaxAge.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func GetClientID(c *gin.Context, cfg config.CookieConfig) string {
	id, _ := c.Cookie(cfg.Name)
	return id
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
