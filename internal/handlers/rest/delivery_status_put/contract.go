package delivery_status_put

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_status_put_test

import (
	"context"

	"deliveryhub/internal/entities"
	"deliveryhub/pkg/logger"

	"github.com/google/uuid"
)

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}

type Service interface {
	AdvanceStatus(
		ctx context.Context,
		actor entities.Actor,
		requestID uuid.UUID,
		target entities.RequestStatus,
	) (*entities.DeliveryRequestView, error)
}
