package entities

import (
	"time"

	"github.com/google/uuid"
)

type LifecycleEventKind string

const (
	EventCreated             LifecycleEventKind = "created"
	EventAssigned            LifecycleEventKind = "assigned"
	EventStatusAdvanced      LifecycleEventKind = "status_advanced"
	EventDelivered           LifecycleEventKind = "delivered"
	EventDeclined            LifecycleEventKind = "declined"
	EventDeclineDismissed    LifecycleEventKind = "decline_dismissed"
	EventCancelled           LifecycleEventKind = "cancelled"
	EventApplicationReceived LifecycleEventKind = "application_received"
)

func (k LifecycleEventKind) String() string {
	return string(k)
}

// LifecycleEvent is emitted after a state change has been committed.
type LifecycleEvent struct {
	Kind          LifecycleEventKind
	RequestID     uuid.UUID
	CustomerID    uuid.UUID
	TransporterID *uuid.UUID
	ApplicationID *uuid.UUID
	ActorID       uuid.UUID
	Status        RequestStatus
	Reason        string
	OccurredAt    time.Time
}

func NewRequestEvent(kind LifecycleEventKind, r *DeliveryRequest, actorID uuid.UUID, at time.Time) LifecycleEvent {
	return LifecycleEvent{
		Kind:          kind,
		RequestID:     r.ID,
		CustomerID:    r.CustomerID,
		TransporterID: r.TransporterID,
		ActorID:       actorID,
		Status:        r.Status,
		OccurredAt:    at,
	}
}
