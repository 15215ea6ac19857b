package delivery_request

import (
	"time"

	"github.com/google/uuid"
)

type DeliveryRequestDB struct {
	ID          uuid.UUID
	PickupCity  string
	DropoffCity string
	ItemType    string
	Description string
	WeightKg    float64
	PickupDate  *time.Time

	CustomerID    uuid.UUID
	TransporterID *uuid.UUID
	Status        string

	CreatedAt   time.Time
	RequestedAt *time.Time
	AcceptedAt  *time.Time
	AssignedAt  *time.Time
	DeliveredAt *time.Time
	DeclinedAt  *time.Time

	DeclineReason    *string
	DeclineMessage   string
	DeclinedBy       *uuid.UUID
	DeclineDismissed bool

	CancelReason string
}

// columns must stay in the order scanned by scanRequest.
const columns = `id, pickup_city, dropoff_city, item_type, description, weight_kg, pickup_date,
	customer_id, transporter_id, status,
	created_at, requested_at, accepted_at, assigned_at, delivered_at, declined_at,
	decline_reason, decline_message, declined_by, decline_dismissed, cancel_reason`

func (m *DeliveryRequestDB) scanTargets() []any {
	return []any{
		&m.ID, &m.PickupCity, &m.DropoffCity, &m.ItemType, &m.Description, &m.WeightKg, &m.PickupDate,
		&m.CustomerID, &m.TransporterID, &m.Status,
		&m.CreatedAt, &m.RequestedAt, &m.AcceptedAt, &m.AssignedAt, &m.DeliveredAt, &m.DeclinedAt,
		&m.DeclineReason, &m.DeclineMessage, &m.DeclinedBy, &m.DeclineDismissed, &m.CancelReason,
	}
}
