package applications_my_get

import (
	"net/http"

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

	applications, err := h.service.ListMyApplications(r.Context(), actor)
	if err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}

	httpx.JSON(w, h.log, http.StatusOK, httpx.Applications(applications))
}
