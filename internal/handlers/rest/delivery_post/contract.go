package delivery_post

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_post_test

import (
	"context"

	"deliveryhub/internal/entities"
	"deliveryhub/pkg/logger"
)

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}

type Service interface {
	CreateRequest(
		ctx context.Context,
		actor entities.Actor,
		in entities.DeliveryRequestCreate,
	) (*entities.DeliveryRequestView, error)
}
