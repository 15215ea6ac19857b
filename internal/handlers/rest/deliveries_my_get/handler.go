package deliveries_my_get

import (
	"net/http"
	"strings"

	"deliveryhub/internal/entities"
	"deliveryhub/internal/handlers/rest/httpx"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP lists the caller's requests, optionally narrowed by ?status=.
// Unknown statuses are rejected by the service.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, err := httpx.Actor(r)
	if err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}

	var status *entities.RequestStatus
	if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
		s := entities.RequestStatus(strings.ToUpper(raw))
		status = &s
	}

	requests, err := h.service.ListMyRequests(r.Context(), actor, status)
	if err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}

	httpx.JSON(w, h.log, http.StatusOK, httpx.Deliveries(requests))
}
