package offer_expiry

import (
	"context"

	"deliveryhub/pkg/logger"
)

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=offer_expiry_test

type Service interface {
	CountStaleOffers(ctx context.Context) (int64, error)
}

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
}
