package transporter_pricing_put

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

	var body dto.TariffUpdate
	if err := httpx.DecodeJSON(r, &body, false); err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}

	tariff, err := h.service.SetTariff(r.Context(), actor, entities.TransporterPricing{
		WeightThresholdKg:        body.WeightThresholdKg,
		FixedPriceUnderThreshold: body.FixedPriceUnderThreshold,
		RatePerKg:                body.RatePerKg,
	})
	if err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}

	httpx.JSON(w, h.log, http.StatusOK, httpx.Tariff(tariff))
}
