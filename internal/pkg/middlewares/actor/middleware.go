package actor

import (
	"encoding/json"
	"net/http"
	"strings"

	"deliveryhub/internal/generated/dto"
	"deliveryhub/internal/pkg/actorctx"
	"deliveryhub/pkg/logger"
)

const bearerPrefix = "bearer "

// Middleware resolves the caller from the Authorization header and stores
// it in the request context. Requests without a valid bearer token get 401.
func Middleware(log handlerLogger, validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
				unauthorized(w, log, "missing bearer token")
				return
			}

			actor, err := validator.Validate(strings.TrimSpace(header[len(bearerPrefix):]))
			if err != nil {
				log.Warn("token rejected",
					logger.ErrorField(err),
					logger.NewField("path", r.URL.Path),
				)
				unauthorized(w, log, "invalid bearer token")
				return
			}

			next.ServeHTTP(w, r.WithContext(actorctx.WithActor(r.Context(), actor)))
		})
	}
}

func unauthorized(w http.ResponseWriter, log handlerLogger, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="deliveryhub"`)
	w.WriteHeader(http.StatusUnauthorized)

	err := json.NewEncoder(w).Encode(dto.Error{Code: "unauthenticated", Message: message})
	if err != nil {
		log.Error("encode JSON response", logger.ErrorField(err))
	}
}
