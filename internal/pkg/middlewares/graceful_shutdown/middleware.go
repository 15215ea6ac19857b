package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"
)

// Middleware answers 503 once shutdown has begun and ongoingCtx is done.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isShuttingDown.Load() && ongoingCtx.Err() != nil {
				http.Error(w, "service is shutting down", http.StatusServiceUnavailable)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
