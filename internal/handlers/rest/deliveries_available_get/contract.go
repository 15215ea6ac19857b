package deliveries_available_get

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deliveries_available_get_test

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
	ListAvailable(ctx context.Context, actor entities.Actor) ([]entities.DeliveryRequestView, error)
}
