package entities

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "PENDING"
	ApplicationAccepted ApplicationStatus = "ACCEPTED"
	ApplicationRejected ApplicationStatus = "REJECTED"
)

func (s ApplicationStatus) String() string {
	return string(s)
}

// DeliveryApplication is a transporter's bid on an open request.
type DeliveryApplication struct {
	ID            uuid.UUID
	RequestID     uuid.UUID
	TransporterID uuid.UUID
	// QuotedPrice is fixed at apply time.
	QuotedPrice float64
	Status      ApplicationStatus
	AppliedAt   time.Time
}
