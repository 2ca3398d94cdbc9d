package http

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"

	"investsim/metrics"
)

// RateLimitMiddleware refuses requests from clients that exhausted their bucket.
// Clients are keyed by the IP of the connection. Forwarding headers are not
// trusted since any client can set them.
func RateLimitMiddleware(limiter *RateLimiter, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			if !limiter.Allow(ip) {
				metrics.RateLimited.Inc()
				retry := int(math.Ceil(limiter.RetryAfter(ip).Seconds()))
				w.Header().Set("Retry-After", strconv.Itoa(retry))
				writeError(w, logger, http.StatusTooManyRequests, "rate limit exceeded", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
