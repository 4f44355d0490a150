//go:build unit

package middleware

// Tracked is the number of client limiters currently held.
func (r *RateLimiter) Tracked() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.limiters)
}
