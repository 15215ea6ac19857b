package bidding

import (
	"context"
	"errors"
	"fmt"

	"deliveryhub/internal/entities"
	"deliveryhub/internal/service/access"
	"deliveryhub/pkg/clock"
	"deliveryhub/pkg/logger"

	"github.com/google/uuid"
)

// Service runs the competitive side of the open pool: transporters bid on
// PENDING requests and the owner picks one of the bids.
type Service struct {
	requests     RequestRepository
	applications ApplicationRepository
	pricing      PricingOracle
	ratings      RatingSource
	views        ViewBuilder
	events       EventSink
	txManager    TxManager
	clock        clock.Clock
	log          serviceLogger
}

func New(
	requests RequestRepository,
	applications ApplicationRepository,
	pricing PricingOracle,
	ratings RatingSource,
	views ViewBuilder,
	events EventSink,
	txManager TxManager,
	clk clock.Clock,
	log serviceLogger,
) *Service {
	return &Service{
		requests:     requests,
		applications: applications,
		pricing:      pricing,
		ratings:      ratings,
		views:        views,
		events:       events,
		txManager:    txManager,
		clock:        clk,
		log:          log,
	}
}

// Apply places the caller's bid on an open request. The quote is fixed at
// this moment. The request row is held FOR SHARE until commit, so an accept
// or claim cannot slip in between the status check and the insert.
func (s *Service) Apply(ctx context.Context, actor entities.Actor, requestID uuid.UUID) (*entities.ApplicationView, error) {
	if err := access.RequireVerifiedTransporter(actor); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	var (
		request *entities.DeliveryRequest
		created *entities.DeliveryApplication
	)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		request, err = s.requests.GetByIDForShare(ctx, requestID)
		if err != nil {
			return fmt.Errorf("get delivery request: %w", err)
		}
		if request.Status != entities.StatusPending {
			return ErrRequestNotOpen
		}

		price, err := s.pricing.Quote(ctx, actor.ID, request.WeightKg)
		if err != nil {
			return fmt.Errorf("quote price: %w", err)
		}

		created, err = s.applications.Create(ctx, entities.DeliveryApplication{
			ID:            uuid.New(),
			RequestID:     requestID,
			TransporterID: actor.ID,
			QuotedPrice:   price,
			Status:        entities.ApplicationPending,
			AppliedAt:     now,
		})
		if err != nil {
			return fmt.Errorf("create application: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, entities.ErrApplicationExists) {
			ApplicationsTotal.WithLabelValues("duplicate").Inc()
		}
		return nil, err
	}

	ApplicationsTotal.WithLabelValues("submitted").Inc()

	event := entities.NewRequestEvent(entities.EventApplicationReceived, request, actor.ID, now)
	event.TransporterID = &created.TransporterID
	event.ApplicationID = &created.ID
	s.events.Publish(ctx, event)

	views := s.views.Applications(ctx, []entities.DeliveryApplication{*created}, nil)
	return &views[0], nil
}

// ListApplications shows the owner every bid on the request, rejected ones
// included, oldest first, with the bidders' aggregate stats.
func (s *Service) ListApplications(
	ctx context.Context,
	actor entities.Actor,
	requestID uuid.UUID,
) ([]entities.ApplicationView, error) {
	if err := access.RequireCustomer(actor); err != nil {
		return nil, err
	}

	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get delivery request: %w", err)
	}
	if err := access.RequireOwner(actor, request); err != nil {
		return nil, err
	}

	applications, err := s.applications.ListByRequest(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(applications))
	for i := range applications {
		ids = append(ids, applications[i].TransporterID)
	}

	stats, err := s.ratings.Stats(ctx, ids)
	if err != nil {
		s.log.Warn("transporter stats unavailable",
			logger.NewField("request_id", requestID.String()),
			logger.ErrorField(err),
		)
		stats = nil
	}

	return s.views.Applications(ctx, applications, stats), nil
}

// AcceptApplication commits the request to the bidder. Siblings still
// pending are rejected in the same transaction.
func (s *Service) AcceptApplication(
	ctx context.Context,
	actor entities.Actor,
	applicationID uuid.UUID,
) (*entities.DeliveryRequestView, error) {
	if err := access.RequireCustomer(actor); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	var (
		updated  *entities.DeliveryRequest
		accepted *entities.DeliveryApplication
	)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		application, err := s.applications.GetByID(ctx, applicationID)
		if err != nil {
			return fmt.Errorf("get application: %w", err)
		}

		request, err := s.requests.GetByIDForUpdate(ctx, application.RequestID)
		if err != nil {
			return fmt.Errorf("get delivery request: %w", err)
		}
		if err := access.RequireOwner(actor, request); err != nil {
			return err
		}
		if request.Status != entities.StatusPending {
			return ErrRequestNotOpen
		}

		// the request lock serializes accepts, the guard catches a stale read
		accepted, err = s.applications.UpdateStatus(ctx, applicationID, entities.ApplicationPending, entities.ApplicationAccepted)
		if err != nil {
			if errors.Is(err, entities.ErrApplicationStatusChanged) {
				return ErrApplicationNotPending
			}
			return fmt.Errorf("accept application: %w", err)
		}

		if _, err := s.applications.RejectPending(ctx, request.ID, &accepted.ID); err != nil {
			return fmt.Errorf("reject sibling applications: %w", err)
		}

		assigned := entities.StatusAssigned
		transporterID := accepted.TransporterID
		updated, err = s.requests.Update(ctx, entities.DeliveryRequestModify{
			ID:             request.ID,
			ExpectedStatus: entities.StatusPending,
			Status:         &assigned,
			TransporterID:  &transporterID,
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

	ApplicationsTotal.WithLabelValues("accepted").Inc()

	event := entities.NewRequestEvent(entities.EventAssigned, updated, actor.ID, now)
	event.ApplicationID = &accepted.ID
	s.events.Publish(ctx, event)

	return s.views.Request(ctx, updated), nil
}

// ListMyApplications returns the caller's bids in any status, newest first.
func (s *Service) ListMyApplications(ctx context.Context, actor entities.Actor) ([]entities.ApplicationView, error) {
	if err := access.RequireVerifiedTransporter(actor); err != nil {
		return nil, err
	}

	applications, err := s.applications.ListByTransporter(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("list transporter applications: %w", err)
	}
	return s.views.Applications(ctx, applications, nil), nil
}
