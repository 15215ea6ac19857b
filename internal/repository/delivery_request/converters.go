package delivery_request

import (
	"time"

	"deliveryhub/internal/entities"
)

func ToDomain(m *DeliveryRequestDB) *entities.DeliveryRequest {
	if m == nil {
		return nil
	}

	r := &entities.DeliveryRequest{
		ID:               m.ID,
		PickupCity:       m.PickupCity,
		DropoffCity:      m.DropoffCity,
		ItemType:         m.ItemType,
		Description:      m.Description,
		WeightKg:         m.WeightKg,
		PickupDate:       utcPtr(m.PickupDate),
		CustomerID:       m.CustomerID,
		TransporterID:    m.TransporterID,
		Status:           entities.RequestStatus(m.Status),
		CreatedAt:        m.CreatedAt.UTC(),
		RequestedAt:      utcPtr(m.RequestedAt),
		AcceptedAt:       utcPtr(m.AcceptedAt),
		AssignedAt:       utcPtr(m.AssignedAt),
		DeliveredAt:      utcPtr(m.DeliveredAt),
		DeclinedAt:       utcPtr(m.DeclinedAt),
		DeclineMessage:   m.DeclineMessage,
		DeclinedBy:       m.DeclinedBy,
		DeclineDismissed: m.DeclineDismissed,
		CancelReason:     m.CancelReason,
	}
	if m.DeclineReason != nil {
		reason := entities.DeclineReason(*m.DeclineReason)
		r.DeclineReason = &reason
	}
	return r
}

func ToDomainList(models []DeliveryRequestDB) []entities.DeliveryRequest {
	result := make([]entities.DeliveryRequest, 0, len(models))
	for i := range models {
		result = append(result, *ToDomain(&models[i]))
	}
	return result
}

func FromDomain(r *entities.DeliveryRequest) *DeliveryRequestDB {
	m := &DeliveryRequestDB{
		ID:               r.ID,
		PickupCity:       r.PickupCity,
		DropoffCity:      r.DropoffCity,
		ItemType:         r.ItemType,
		Description:      r.Description,
		WeightKg:         r.WeightKg,
		PickupDate:       r.PickupDate,
		CustomerID:       r.CustomerID,
		TransporterID:    r.TransporterID,
		Status:           r.Status.String(),
		CreatedAt:        r.CreatedAt,
		RequestedAt:      r.RequestedAt,
		AcceptedAt:       r.AcceptedAt,
		AssignedAt:       r.AssignedAt,
		DeliveredAt:      r.DeliveredAt,
		DeclinedAt:       r.DeclinedAt,
		DeclineMessage:   r.DeclineMessage,
		DeclinedBy:       r.DeclinedBy,
		DeclineDismissed: r.DeclineDismissed,
		CancelReason:     r.CancelReason,
	}
	if r.DeclineReason != nil {
		reason := r.DeclineReason.String()
		m.DeclineReason = &reason
	}
	return m
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
