package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"beautyverse-storefront/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware lets the storefront SPA call the API with its client cookie.
// "*" in CORS_ALLOW_ORIGINS echoes any origin, since a literal wildcard cannot
// be combined with credentials.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	origins := normalizeOrigins(cfg.AllowOrigins)

	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    withHeader(cfg.ExposeHeaders, "Location"),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	switch {
	case slices.Contains(origins, "*"):
		corsCfg.AllowOriginFunc = func(string) bool { return true }
	case len(origins) == 0:
		corsCfg.AllowOriginFunc = func(string) bool { return false }
	default:
		corsCfg.AllowOrigins = origins
	}

	slog.Info("CORS middleware initialized", "allow_origins", origins, "credentials", cfg.AllowCredentials)
	return cors.New(corsCfg)
}

func normalizeOrigins(in []string) []string {
	out := make([]string, 0, len(in))
	for _, o := range in {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o != "" && !slices.Contains(out, o) {
			out = append(out, o)
		}
	}
	return out
}

func withHeader(headers []string, h string) []string {
	for _, existing := range headers {
		if strings.EqualFold(existing, h) {
			return headers
		}
	}
	return append(slices.Clone(headers), h)
}
