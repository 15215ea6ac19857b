package lifecycle

import (
	"context"
	"fmt"

	"deliveryhub/internal/entities"
	"deliveryhub/internal/service/access"

	"github.com/google/uuid"
)

// ListMyRequests returns the customer's requests, newest first, optionally
// narrowed to one status.
func (s *Service) ListMyRequests(
	ctx context.Context,
	actor entities.Actor,
	status *entities.RequestStatus,
) ([]entities.DeliveryRequestView, error) {
	if err := access.RequireCustomer(actor); err != nil {
		return nil, err
	}

	customerID := actor.ID
	filter := entities.DeliveryRequestFilter{CustomerID: &customerID}
	if status != nil {
		if !status.Valid() {
			return nil, ErrUnknownStatus
		}
		filter.Statuses = []entities.RequestStatus{*status}
	}

	requests, err := s.requests.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list customer requests: %w", err)
	}
	return s.views.Requests(ctx, requests), nil
}

// ListAvailable returns the open pool, oldest first.
func (s *Service) ListAvailable(ctx context.Context, actor entities.Actor) ([]entities.DeliveryRequestView, error) {
	if err := access.RequireVerifiedTransporter(actor); err != nil {
		return nil, err
	}

	requests, err := s.requests.List(ctx, entities.DeliveryRequestFilter{
		Statuses:       []entities.RequestStatus{entities.StatusPending},
		OnlyUnassigned: true,
		OldestFirst:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("list available requests: %w", err)
	}
	return s.views.Requests(ctx, requests), nil
}

// ListAssigned returns the requests bound to the transporter. Direct offers
// whose window has elapsed are left out.
func (s *Service) ListAssigned(ctx context.Context, actor entities.Actor) ([]entities.DeliveryRequestView, error) {
	if err := access.RequireVerifiedTransporter(actor); err != nil {
		return nil, err
	}

	transporterID := actor.ID
	requests, err := s.requests.List(ctx, entities.DeliveryRequestFilter{
		TransporterID: &transporterID,
		Statuses:      entities.TransporterWorkingStatuses,
	})
	if err != nil {
		return nil, fmt.Errorf("list assigned requests: %w", err)
	}

	now := s.clock.Now()
	live := requests[:0]
	for i := range requests {
		if requests[i].OfferExpired(now, s.offerTTL) {
			continue
		}
		live = append(live, requests[i])
	}
	return s.views.Requests(ctx, live), nil
}

// GetRequest shows a request to its owner and to its bound transporter.
// Open requests are also visible to every verified transporter, as they
// are in the available listing.
func (s *Service) GetRequest(
	ctx context.Context,
	actor entities.Actor,
	requestID uuid.UUID,
) (*entities.DeliveryRequestView, error) {
	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get delivery request: %w", err)
	}

	if !s.visible(actor, request) {
		return nil, ErrNotVisible
	}
	return s.views.Request(ctx, request), nil
}

func (s *Service) visible(actor entities.Actor, request *entities.DeliveryRequest) bool {
	switch actor.Role {
	case entities.RoleCustomer:
		return request.OwnedBy(actor.ID)
	case entities.RoleTransporter:
		if request.BoundTo(actor.ID) {
			return true
		}
		return actor.Verified && request.Status == entities.StatusPending
	default:
		return false
	}
}

// CountStaleOffers reports how many direct offers have outlived the offer
// window without being accepted.
func (s *Service) CountStaleOffers(ctx context.Context) (int64, error) {
	count, err := s.requests.CountStaleOffers(ctx, s.clock.Now().Add(-s.offerTTL))
	if err != nil {
		return 0, fmt.Errorf("count stale offers: %w", err)
	}
	return count, nil
}
