package delivery_decline_post

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_decline_post_test

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
	DeclineRequest(
		ctx context.Context,
		actor entities.Actor,
		requestID uuid.UUID,
		reason entities.DeclineReason,
		message string,
	) (*entities.DeliveryRequestView, error)
}
