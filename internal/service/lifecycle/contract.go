//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=lifecycle_test
package lifecycle

import (
	"context"
	"time"

	"deliveryhub/internal/entities"

	"github.com/google/uuid"
)

type RequestRepository interface {
	Create(ctx context.Context, request entities.DeliveryRequest) (*entities.DeliveryRequest, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.DeliveryRequest, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.DeliveryRequest, error)
	Update(ctx context.Context, modify entities.DeliveryRequestModify) (*entities.DeliveryRequest, error)
	List(ctx context.Context, filter entities.DeliveryRequestFilter) ([]entities.DeliveryRequest, error)
	CountStaleOffers(ctx context.Context, requestedBefore time.Time) (int64, error)
}

type ApplicationRepository interface {
	AcceptPendingOf(ctx context.Context, requestID, transporterID uuid.UUID) (*entities.DeliveryApplication, error)
	RejectPending(ctx context.Context, requestID uuid.UUID, exceptID *uuid.UUID) (int64, error)
}

type ViewBuilder interface {
	Request(ctx context.Context, request *entities.DeliveryRequest) *entities.DeliveryRequestView
	Requests(ctx context.Context, requests []entities.DeliveryRequest) []entities.DeliveryRequestView
}

type EventSink interface {
	Publish(ctx context.Context, event entities.LifecycleEvent)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
