package transporter_pricing_put

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=transporter_pricing_put_test

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
	SetTariff(ctx context.Context, actor entities.Actor, in entities.TransporterPricing) (*entities.TransporterPricing, error)
}
