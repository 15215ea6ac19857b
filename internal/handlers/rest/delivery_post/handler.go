package delivery_post

import (
	"fmt"
	"net/http"
	"time"

	"deliveryhub/internal/entities"
	"deliveryhub/internal/generated/dto"
	"deliveryhub/internal/handlers/rest/httpx"

	"github.com/google/uuid"
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

	var body dto.DeliveryCreate
	if err := httpx.DecodeJSON(r, &body, false); err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}

	in, err := toCreate(body)
	if err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}

	created, err := h.service.CreateRequest(r.Context(), actor, in)
	if err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}

	httpx.JSON(w, h.log, http.StatusCreated, httpx.Delivery(created))
}

func toCreate(body dto.DeliveryCreate) (entities.DeliveryRequestCreate, error) {
	in := entities.DeliveryRequestCreate{
		PickupCity:  body.PickupCity,
		DropoffCity: body.DropoffCity,
		ItemType:    body.ItemType,
		WeightKg:    body.WeightKg,
	}
	if body.Description != nil {
		in.Description = *body.Description
	}

	if body.PickupDate != nil && *body.PickupDate != "" {
		date, err := time.Parse(time.DateOnly, *body.PickupDate)
		if err != nil {
			return in, fmt.Errorf("%w: pickup_date must be YYYY-MM-DD", httpx.ErrMalformedRequest)
		}
		in.PickupDate = &date
	}

	if body.TransporterID != nil && *body.TransporterID != "" {
		id, err := uuid.Parse(*body.TransporterID)
		if err != nil {
			return in, fmt.Errorf("%w: transporter_id is not a uuid", httpx.ErrMalformedRequest)
		}
		in.TargetTransporterID = &id
	}

	return in, nil
}
