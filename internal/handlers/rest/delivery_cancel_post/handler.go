package delivery_cancel_post

import (
	"net/http"

	"deliveryhub/internal/generated/dto"
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

// ServeHTTP cancels an assigned request. The body with a reason is optional.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, err := httpx.Actor(r)
	if err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}

	id, err := httpx.PathID(r)
	if err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}

	var body dto.CancelCreate
	if err := httpx.DecodeJSON(r, &body, true); err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}

	var reason string
	if body.Reason != nil {
		reason = *body.Reason
	}

	request, err := h.service.CancelRequest(r.Context(), actor, id, reason)
	if err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}

	httpx.JSON(w, h.log, http.StatusOK, httpx.Delivery(request))
}
