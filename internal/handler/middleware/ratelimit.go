package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"beautyverse-storefront/internal/handler/httperr"
	"beautyverse-storefront/internal/pkg/clock"
	"beautyverse-storefront/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	// idle limiters are dropped after this long
	limiterTTL = 10 * time.Minute
	// at most one sweep of the limiter map per interval
	sweepInterval = time.Minute
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type RateLimiter struct {
	cfg       config.RateLimitConfig
	mu        sync.Mutex
	limiters  map[string]*limiterEntry
	clock     clock.Clock
	lastSweep time.Time
}

func NewRateLimiter(cfg config.Config, clk clock.Clock) *RateLimiter {
	return &RateLimiter{
		cfg:       cfg.RateLimit,
		limiters:  make(map[string]*limiterEntry),
		clock:     clk,
		lastSweep: clk.Now(),
	}
}

func (r *RateLimiter) get(ip string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	if now.Sub(r.lastSweep) >= sweepInterval {
		r.sweep(now)
	}

	e, exists := r.limiters[ip]
	if !exists || now.Sub(e.lastSeen) > limiterTTL {
		e = &limiterEntry{limiter: rate.NewLimiter(rate.Every(r.cfg.Every), r.cfg.Burst)}
		r.limiters[ip] = e
	}
	e.lastSeen = now
	return e.limiter
}

// sweep drops idle limiters. Callers hold r.mu.
func (r *RateLimiter) sweep(now time.Time) {
	for key, e := range r.limiters {
		if now.Sub(e.lastSeen) > limiterTTL {
			delete(r.limiters, key)
		}
	}
	r.lastSweep = now
}

// Middleware limits requests per client IP. Disabled config passes everything.
func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !r.cfg.Enabled {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if !r.get(ip).Allow() {
			slog.Warn("rate limit exceeded", "client_ip", ip)
			httperr.AbortWithError(c, http.StatusTooManyRequests, nil, "Too many requests. Try again later.", nil)
			return
		}
		c.Next()
	}
}
