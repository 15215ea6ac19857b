package delivery_application

import (
	"time"

	"github.com/google/uuid"
)

type DeliveryApplicationDB struct {
	ID            uuid.UUID
	RequestID     uuid.UUID
	TransporterID uuid.UUID
	QuotedPrice   float64
	Status        string
	AppliedAt     time.Time
}

const columns = `id, delivery_request_id, transporter_id, quoted_price, status, applied_at`

func (m *DeliveryApplicationDB) scanTargets() []any {
	return []any{&m.ID, &m.RequestID, &m.TransporterID, &m.QuotedPrice, &m.Status, &m.AppliedAt}
}
