package applications_my_get

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=applications_my_get_test

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
	ListMyApplications(ctx context.Context, actor entities.Actor) ([]entities.ApplicationView, error)
}
