package ratelimiter

import (
	"math"
	"net/http"
	"strconv"
)

// KeyFunc picks the bucket of a request. Requests with an empty key are not
// limited.
type KeyFunc func(r *http.Request) string

// Middleware sets the X-RateLimit-* headers and hands rejected requests to
// onLimited after setting Retry-After. A nil onLimited answers with a plain
// 429.
func Middleware(l *Limiter, key KeyFunc, onLimited http.Handler) func(http.Handler) http.Handler {
	if onLimited == nil {
		onLimited = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		})
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				next.ServeHTTP(w, r)
				return
			}

			d := l.Allow(k)
			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(d.ResetAt.Unix(), 10))

			if !d.Allowed {
				secs := math.Ceil(d.RetryAfter(l.Now()).Seconds())
				h.Set("Retry-After", strconv.Itoa(max(int(secs), 1)))
				onLimited.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
