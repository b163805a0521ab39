package middleware

import (
	"net/http"

	"golang.org/x/time/rate"
)

// NewRateLimiter returns a middleware enforcing a global token-bucket rate
// limit across all requests. The planner is single-user, so one bucket is
// enough; the limit exists to keep a published read-only instance from
// being hammered. Requests over the limit get 429.
func NewRateLimiter(rps float64, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
