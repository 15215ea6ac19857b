package rate_limiter

import (
	"net/http"
	"strconv"

	"deliveryhub/pkg/logger"

	"github.com/gorilla/mux"
)

const rejectedBody = `{"code":"rate_limited","message":"rate limit exceeded, try again later"}`

// Middleware rejects requests with 429 while limiter has no tokens.
// limit is only advertised in X-RateLimit-Limit.
func Middleware(log handlerLogger, limit int, limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if template, err := current.GetPathTemplate(); err == nil {
					route = template
				}
			}

			log.Warn("rate limit exceeded",
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			)
			RateLimitedTotal.WithLabelValues(route).Inc()

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)

			if _, err := w.Write([]byte(rejectedBody)); err != nil {
				log.Error("write rate limit response", logger.ErrorField(err))
			}
		})
	}
}
