package lifecycle

import (
	"time"

	"deliveryhub/internal/entities"

	"github.com/google/uuid"
)

type eventMessage struct {
	Kind          string     `json:"kind"`
	RequestID     uuid.UUID  `json:"request_id"`
	CustomerID    uuid.UUID  `json:"customer_id"`
	TransporterID *uuid.UUID `json:"transporter_id,omitempty"`
	ApplicationID *uuid.UUID `json:"application_id,omitempty"`
	ActorID       uuid.UUID  `json:"actor_id"`
	Status        string     `json:"status"`
	Reason        string     `json:"reason,omitempty"`
	OccurredAt    time.Time  `json:"occurred_at"`
}

func toMessage(event entities.LifecycleEvent) eventMessage {
	return eventMessage{
		Kind:          event.Kind.String(),
		RequestID:     event.RequestID,
		CustomerID:    event.CustomerID,
		TransporterID: event.TransporterID,
		ApplicationID: event.ApplicationID,
		ActorID:       event.ActorID,
		Status:        event.Status.String(),
		Reason:        event.Reason,
		OccurredAt:    event.OccurredAt.UTC(),
	}
}
