package timeout

import (
	"context"
	"net/http"
	"time"
)

// Middleware bounds every request by d. The parent is the server's
// BaseContext, so in-flight work also ends on final shutdown.
func Middleware(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
