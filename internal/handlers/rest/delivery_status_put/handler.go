package delivery_status_put

import (
	"net/http"

	"deliveryhub/internal/entities"
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

	var body dto.StatusUpdate
	if err := httpx.DecodeJSON(r, &body, false); err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}

	request, err := h.service.AdvanceStatus(r.Context(), actor, id, entities.RequestStatus(body.Status))
	if err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}

	httpx.JSON(w, h.log, http.StatusOK, httpx.Delivery(request))
}
