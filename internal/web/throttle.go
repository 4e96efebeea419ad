package web

import (
	"net/http"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

func newPostLimiter(perSecond float64, burst int) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	if burst < 1 {
		burst = 1
	}

	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

// throttle rejects mutating requests beyond the configured server-wide rate.
func (s *Server) throttle(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			w.Header().Set("Retry-After", "1")
			s.error(w, r, errors.New("POST rate limit exceeded"), http.StatusTooManyRequests)
			return
		}

		h.ServeHTTP(w, r)
	})
}
