package middleware

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimit ограничивает общую частоту запросов по алгоритму token bucket.
// При превышении отвечает 429 с заголовком Retry-After.
func RateLimit(limiter *rate.Limiter, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reservation := limiter.Reserve()
			if !reservation.OK() {
				rejectRateLimited(w, r, logger, time.Second)
				return
			}

			if delay := reservation.Delay(); delay > 0 {
				reservation.Cancel()
				rejectRateLimited(w, r, logger, delay)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func rejectRateLimited(w http.ResponseWriter, r *http.Request, logger *zap.Logger, retryAfter time.Duration) {
	logger.Warn("Rate limit exceeded",
		zap.String("path", r.URL.Path),
		zap.String("remote_addr", r.RemoteAddr),
	)

	seconds := int(math.Ceil(retryAfter.Seconds()))
	if seconds < 1 {
		seconds = 1
	}
	w.Header().Set("Retry-After", strconv.Itoa(seconds))
	http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}
