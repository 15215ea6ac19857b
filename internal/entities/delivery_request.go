package entities

import (
	"time"

	"github.com/google/uuid"
)

type RequestStatus string

const (
	StatusPending   RequestStatus = "PENDING"
	StatusRequested RequestStatus = "REQUESTED"
	StatusAssigned  RequestStatus = "ASSIGNED"
	StatusPickedUp  RequestStatus = "PICKED_UP"
	StatusInTransit RequestStatus = "IN_TRANSIT"
	StatusDelivered RequestStatus = "DELIVERED"
	StatusDeclined  RequestStatus = "DECLINED"
	StatusCancelled RequestStatus = "CANCELLED"
)

func (s RequestStatus) String() string {
	return string(s)
}

func (s RequestStatus) Valid() bool {
	switch s {
	case StatusPending, StatusRequested, StatusAssigned, StatusPickedUp,
		StatusInTransit, StatusDelivered, StatusDeclined, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s RequestStatus) IsTerminal() bool {
	switch s {
	case StatusDelivered, StatusCancelled, StatusDeclined:
		return true
	default:
		return false
	}
}

// progressTransitions lists the moves the bound transporter may make
// while executing a shipment.
var progressTransitions = map[RequestStatus][]RequestStatus{
	StatusAssigned:  {StatusPickedUp},
	StatusPickedUp:  {StatusInTransit, StatusDelivered},
	StatusInTransit: {StatusDelivered},
}

func (s RequestStatus) CanAdvanceTo(target RequestStatus) bool {
	for _, next := range progressTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransporterWorkingStatuses are the statuses shown in a transporter's
// assigned listing.
var TransporterWorkingStatuses = []RequestStatus{
	StatusRequested,
	StatusAssigned,
	StatusPickedUp,
	StatusInTransit,
	StatusDelivered,
}

type DeliveryRequest struct {
	ID          uuid.UUID
	PickupCity  string
	DropoffCity string
	ItemType    string
	Description string
	WeightKg    float64
	// PickupDate is a calendar date (midnight UTC) or nil.
	PickupDate *time.Time

	CustomerID    uuid.UUID
	TransporterID *uuid.UUID
	Status        RequestStatus

	CreatedAt   time.Time
	RequestedAt *time.Time
	AcceptedAt  *time.Time
	AssignedAt  *time.Time
	DeliveredAt *time.Time
	DeclinedAt  *time.Time

	DeclineReason    *DeclineReason
	DeclineMessage   string
	DeclinedBy       *uuid.UUID
	DeclineDismissed bool

	CancelReason string
}

func (r *DeliveryRequest) OwnedBy(customerID uuid.UUID) bool {
	return r.CustomerID == customerID
}

func (r *DeliveryRequest) BoundTo(transporterID uuid.UUID) bool {
	return r.TransporterID != nil && *r.TransporterID == transporterID
}

// OfferExpired reports whether a direct offer has outlived ttl at now.
// A request without requestedAt never expires.
func (r *DeliveryRequest) OfferExpired(now time.Time, ttl time.Duration) bool {
	if r.Status != StatusRequested || r.RequestedAt == nil {
		return false
	}
	return now.Sub(*r.RequestedAt) > ttl
}

// DeliveryRequestCreate is the customer's input for a new shipment.
type DeliveryRequestCreate struct {
	PickupCity          string
	DropoffCity         string
	ItemType            string
	Description         string
	WeightKg            float64
	PickupDate          *time.Time
	TargetTransporterID *uuid.UUID
}

// DeliveryRequestModify describes a guarded update: it applies only while
// the row is still in ExpectedStatus. Nil fields are left untouched.
type DeliveryRequestModify struct {
	ID             uuid.UUID
	ExpectedStatus RequestStatus

	Status        *RequestStatus
	TransporterID *uuid.UUID

	AcceptedAt  *time.Time
	AssignedAt  *time.Time
	DeliveredAt *time.Time
	DeclinedAt  *time.Time

	DeclineReason    *DeclineReason
	DeclineMessage   *string
	DeclinedBy       *uuid.UUID
	DeclineDismissed *bool

	CancelReason *string
}

// DeliveryRequestFilter selects requests for listings. Empty fields do not
// restrict the result.
type DeliveryRequestFilter struct {
	CustomerID    *uuid.UUID
	TransporterID *uuid.UUID
	Statuses      []RequestStatus
	// OnlyUnassigned keeps rows with no bound transporter.
	OnlyUnassigned bool
	// OldestFirst orders by creation ascending, otherwise newest first.
	OldestFirst bool
}
