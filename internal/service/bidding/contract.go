//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bidding_test
package bidding

import (
	"context"

	"deliveryhub/internal/entities"
	"deliveryhub/pkg/logger"

	"github.com/google/uuid"
)

type RequestRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.DeliveryRequest, error)
	GetByIDForShare(ctx context.Context, id uuid.UUID) (*entities.DeliveryRequest, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.DeliveryRequest, error)
	Update(ctx context.Context, modify entities.DeliveryRequestModify) (*entities.DeliveryRequest, error)
}

type ApplicationRepository interface {
	Create(ctx context.Context, application entities.DeliveryApplication) (*entities.DeliveryApplication, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.DeliveryApplication, error)
	ListByRequest(ctx context.Context, requestID uuid.UUID) ([]entities.DeliveryApplication, error)
	ListByTransporter(ctx context.Context, transporterID uuid.UUID) ([]entities.DeliveryApplication, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entities.ApplicationStatus) (*entities.DeliveryApplication, error)
	RejectPending(ctx context.Context, requestID uuid.UUID, exceptID *uuid.UUID) (int64, error)
}

type PricingOracle interface {
	Quote(ctx context.Context, transporterID uuid.UUID, weightKg float64) (float64, error)
}

type RatingSource interface {
	Stats(ctx context.Context, transporterIDs []uuid.UUID) (map[uuid.UUID]entities.TransporterStats, error)
}

type ViewBuilder interface {
	Request(ctx context.Context, request *entities.DeliveryRequest) *entities.DeliveryRequestView
	Applications(ctx context.Context, applications []entities.DeliveryApplication, stats map[uuid.UUID]entities.TransporterStats) []entities.ApplicationView
}

type EventSink interface {
	Publish(ctx context.Context, event entities.LifecycleEvent)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
}
