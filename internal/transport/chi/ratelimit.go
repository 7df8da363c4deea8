package chi

import (
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimitMiddleware throttles requests with one shared token bucket.
// rps <= 0 disables it.
func RateLimitMiddleware(rps float64, burst int) func(http.Handler) http.Handler {
	var limiter *rate.Limiter
	if rps > 0 {
		limiter = rate.NewLimiter(rate.Limit(rps), max(burst, 1))
	}

	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", "1")
				writeError(w, http.StatusTooManyRequests, CodeRateLimited, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
