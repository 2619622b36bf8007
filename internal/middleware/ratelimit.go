package middleware

import (
	"net/http"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// RateLimit rejects requests beyond rps with a burst allowance. The limit is
// shared by every client of the handler.
func RateLimit(rps float64, burst int, logger zerolog.Logger) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				logger.Warn().
					Str("path", r.URL.Path).
					Str("request_id", GetRequestID(r.Context())).
					Msg("rate limit exceeded")
				w.Header().Set("Retry-After", "1")
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
