package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"deliveryhub/internal/entities"
	"deliveryhub/internal/service/access"
	"deliveryhub/pkg/clock"

	"github.com/google/uuid"
)

// DefaultOfferTTL is the acceptance window of a direct offer when the
// configuration does not set one.
const DefaultOfferTTL = 48 * time.Hour

// Config holds the tunables of the lifecycle Service.
type Config struct {
	// OfferTTL is how long a targeted transporter may accept a direct offer.
	OfferTTL time.Duration
}

// Service drives a delivery request through its states. It is stateless:
// every check that guards a write is repeated by the write itself.
type Service struct {
	requests     RequestRepository
	applications ApplicationRepository
	views        ViewBuilder
	events       EventSink
	txManager    TxManager
	clock        clock.Clock
	offerTTL     time.Duration
}

func New(
	requests RequestRepository,
	applications ApplicationRepository,
	views ViewBuilder,
	events EventSink,
	txManager TxManager,
	clk clock.Clock,
	cfg Config,
) *Service {
	ttl := cfg.OfferTTL
	if ttl <= 0 {
		ttl = DefaultOfferTTL
	}

	return &Service{
		requests:     requests,
		applications: applications,
		views:        views,
		events:       events,
		txManager:    txManager,
		clock:        clk,
		offerTTL:     ttl,
	}
}

// CreateRequest posts a shipment to the open pool, or offers it directly to
// a transporter when the input names one.
func (s *Service) CreateRequest(
	ctx context.Context,
	actor entities.Actor,
	in entities.DeliveryRequestCreate,
) (*entities.DeliveryRequestView, error) {
	if err := access.RequireCustomer(actor); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	in = normalizeCreate(in)
	if err := validateCreate(actor.ID, in, now); err != nil {
		return nil, err
	}

	request := entities.DeliveryRequest{
		ID:          uuid.New(),
		PickupCity:  in.PickupCity,
		DropoffCity: in.DropoffCity,
		ItemType:    in.ItemType,
		Description: in.Description,
		WeightKg:    in.WeightKg,
		PickupDate:  in.PickupDate,
		CustomerID:  actor.ID,
		Status:      entities.StatusPending,
		CreatedAt:   now,
	}
	if in.TargetTransporterID != nil {
		target := *in.TargetTransporterID
		request.TransporterID = &target
		request.Status = entities.StatusRequested
		request.RequestedAt = &now
	}

	created, err := s.requests.Create(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("create delivery request: %w", err)
	}

	s.emit(ctx, entities.NewRequestEvent(entities.EventCreated, created, actor.ID, now))
	return s.views.Request(ctx, created), nil
}

// AcceptDirectOffer lets the targeted transporter take a REQUESTED offer
// while its window is open. Expiry is evaluated here, not by a sweeper.
func (s *Service) AcceptDirectOffer(
	ctx context.Context,
	actor entities.Actor,
	requestID uuid.UUID,
) (*entities.DeliveryRequestView, error) {
	if err := access.RequireVerifiedTransporter(actor); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	var updated *entities.DeliveryRequest

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		request, err := s.requests.GetByIDForUpdate(ctx, requestID)
		if err != nil {
			return fmt.Errorf("get delivery request: %w", err)
		}

		if request.Status != entities.StatusRequested {
			return ErrNotAwaitingAcceptance
		}
		if !request.BoundTo(actor.ID) {
			return ErrNotBoundTransporter
		}
		if request.OfferExpired(now, s.offerTTL) {
			return ErrOfferExpired
		}

		assigned := entities.StatusAssigned
		updated, err = s.requests.Update(ctx, entities.DeliveryRequestModify{
			ID:             requestID,
			ExpectedStatus: entities.StatusRequested,
			Status:         &assigned,
			AcceptedAt:     &now,
			AssignedAt:     &now,
		})
		if err != nil {
			return fmt.Errorf("assign delivery request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.emit(ctx, entities.NewRequestEvent(entities.EventAssigned, updated, actor.ID, now))
	return s.views.Request(ctx, updated), nil
}

// ClaimOpenRequest binds the caller to a PENDING request. The status guard
// in the update is the only arbiter between concurrent claimers.
func (s *Service) ClaimOpenRequest(
	ctx context.Context,
	actor entities.Actor,
	requestID uuid.UUID,
) (*entities.DeliveryRequestView, error) {
	if err := access.RequireVerifiedTransporter(actor); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	var updated *entities.DeliveryRequest

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		assigned := entities.StatusAssigned
		transporterID := actor.ID

		var err error
		updated, err = s.requests.Update(ctx, entities.DeliveryRequestModify{
			ID:             requestID,
			ExpectedStatus: entities.StatusPending,
			Status:         &assigned,
			TransporterID:  &transporterID,
			AssignedAt:     &now,
		})
		if err != nil {
			if errors.Is(err, entities.ErrRequestStatusChanged) {
				ClaimConflictsTotal.Inc()
				return ErrAlreadyTaken
			}
			return fmt.Errorf("claim delivery request: %w", err)
		}

		own, err := s.applications.AcceptPendingOf(ctx, requestID, actor.ID)
		if err != nil {
			return fmt.Errorf("accept own application: %w", err)
		}

		var keep *uuid.UUID
		if own != nil {
			keep = &own.ID
		}
		if _, err := s.applications.RejectPending(ctx, requestID, keep); err != nil {
			return fmt.Errorf("reject competing applications: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.emit(ctx, entities.NewRequestEvent(entities.EventAssigned, updated, actor.ID, now))
	return s.views.Request(ctx, updated), nil
}

// AdvanceStatus moves an assigned shipment forward on behalf of its
// transporter.
func (s *Service) AdvanceStatus(
	ctx context.Context,
	actor entities.Actor,
	requestID uuid.UUID,
	target entities.RequestStatus,
) (*entities.DeliveryRequestView, error) {
	if err := access.RequireVerifiedTransporter(actor); err != nil {
		return nil, err
	}
	if !target.Valid() {
		return nil, ErrUnknownStatus
	}

	now := s.clock.Now()
	var updated *entities.DeliveryRequest

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		request, err := s.requests.GetByIDForUpdate(ctx, requestID)
		if err != nil {
			return fmt.Errorf("get delivery request: %w", err)
		}

		if !request.BoundTo(actor.ID) {
			return ErrNotBoundTransporter
		}
		if !request.Status.CanAdvanceTo(target) {
			return fmt.Errorf("%s -> %s: %w", request.Status, target, ErrTransitionNotAllowed)
		}

		modify := entities.DeliveryRequestModify{
			ID:             requestID,
			ExpectedStatus: request.Status,
			Status:         &target,
		}
		if target == entities.StatusDelivered {
			modify.DeliveredAt = &now
		}

		updated, err = s.requests.Update(ctx, modify)
		if err != nil {
			return fmt.Errorf("advance delivery request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	kind := entities.EventStatusAdvanced
	if target == entities.StatusDelivered {
		kind = entities.EventDelivered
	}
	s.emit(ctx, entities.NewRequestEvent(kind, updated, actor.ID, now))
	return s.views.Request(ctx, updated), nil
}

// DeclineRequest closes a request on the transporter side. A PENDING
// request has no bound transporter, so any verified transporter may decline
// it, and the decline removes it from the open pool for everyone. An
// ASSIGNED request may be declined only by the transporter bound to it.
func (s *Service) DeclineRequest(
	ctx context.Context,
	actor entities.Actor,
	requestID uuid.UUID,
	reason entities.DeclineReason,
	message string,
) (*entities.DeliveryRequestView, error) {
	if err := access.RequireVerifiedTransporter(actor); err != nil {
		return nil, err
	}

	message = strings.TrimSpace(message)
	if err := validateDecline(reason, message); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	var updated *entities.DeliveryRequest

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		request, err := s.requests.GetByIDForUpdate(ctx, requestID)
		if err != nil {
			return fmt.Errorf("get delivery request: %w", err)
		}

		switch request.Status {
		case entities.StatusPending:
		case entities.StatusAssigned:
			if !request.BoundTo(actor.ID) {
				return ErrNotBoundTransporter
			}
		default:
			return ErrNotDeclinable
		}

		declined := entities.StatusDeclined
		declinedBy := actor.ID
		updated, err = s.requests.Update(ctx, entities.DeliveryRequestModify{
			ID:             requestID,
			ExpectedStatus: request.Status,
			Status:         &declined,
			DeclinedAt:     &now,
			DeclineReason:  &reason,
			DeclineMessage: &message,
			DeclinedBy:     &declinedBy,
		})
		if err != nil {
			return fmt.Errorf("decline delivery request: %w", err)
		}

		if _, err := s.applications.RejectPending(ctx, requestID, nil); err != nil {
			return fmt.Errorf("reject pending applications: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	event := entities.NewRequestEvent(entities.EventDeclined, updated, actor.ID, now)
	event.Reason = reason.String()
	s.emit(ctx, event)
	return s.views.Request(ctx, updated), nil
}

// DismissDecline hides a declined request from the owner's attention list.
// A second dismissal is reported, not ignored.
func (s *Service) DismissDecline(
	ctx context.Context,
	actor entities.Actor,
	requestID uuid.UUID,
) (*entities.DeliveryRequestView, error) {
	if err := access.RequireCustomer(actor); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	var updated *entities.DeliveryRequest

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		request, err := s.requests.GetByIDForUpdate(ctx, requestID)
		if err != nil {
			return fmt.Errorf("get delivery request: %w", err)
		}

		if err := access.RequireOwner(actor, request); err != nil {
			return err
		}
		if request.Status != entities.StatusDeclined {
			return ErrNotDeclined
		}
		if request.DeclineDismissed {
			return ErrAlreadyDismissed
		}

		dismissed := true
		updated, err = s.requests.Update(ctx, entities.DeliveryRequestModify{
			ID:               requestID,
			ExpectedStatus:   entities.StatusDeclined,
			DeclineDismissed: &dismissed,
		})
		if err != nil {
			return fmt.Errorf("dismiss decline: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.emit(ctx, entities.NewRequestEvent(entities.EventDeclineDismissed, updated, actor.ID, now))
	return s.views.Request(ctx, updated), nil
}

// CancelRequest withdraws an assigned shipment on the customer side.
func (s *Service) CancelRequest(
	ctx context.Context,
	actor entities.Actor,
	requestID uuid.UUID,
	reason string,
) (*entities.DeliveryRequestView, error) {
	if err := access.RequireCustomer(actor); err != nil {
		return nil, err
	}

	reason = strings.TrimSpace(reason)
	if tooLong(reason, maxMessageLength) {
		return nil, ErrFieldTooLong
	}

	now := s.clock.Now()
	var updated *entities.DeliveryRequest

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		request, err := s.requests.GetByIDForUpdate(ctx, requestID)
		if err != nil {
			return fmt.Errorf("get delivery request: %w", err)
		}

		if err := access.RequireOwner(actor, request); err != nil {
			return err
		}
		if request.Status != entities.StatusAssigned {
			return ErrNotCancellable
		}

		cancelled := entities.StatusCancelled
		updated, err = s.requests.Update(ctx, entities.DeliveryRequestModify{
			ID:             requestID,
			ExpectedStatus: entities.StatusAssigned,
			Status:         &cancelled,
			CancelReason:   &reason,
		})
		if err != nil {
			return fmt.Errorf("cancel delivery request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	event := entities.NewRequestEvent(entities.EventCancelled, updated, actor.ID, now)
	event.Reason = reason
	s.emit(ctx, event)
	return s.views.Request(ctx, updated), nil
}

// emit runs after commit. Publishing never fails the operation.
func (s *Service) emit(ctx context.Context, event entities.LifecycleEvent) {
	RequestTransitionsTotal.WithLabelValues(event.Kind.String()).Inc()
	s.events.Publish(ctx, event)
}
