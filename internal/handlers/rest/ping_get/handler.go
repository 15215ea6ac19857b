package ping_get

import (
	"net/http"

	"deliveryhub/internal/generated/dto"
	"deliveryhub/internal/handlers/rest/httpx"
)

const pong = "pong"

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	return &Handler{
		log: log,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	message := pong
	httpx.JSON(w, h.log, http.StatusOK, dto.PingResponse{Message: &message})
}
