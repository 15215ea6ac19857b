package delivery_apply_post

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_apply_post_test

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
	Apply(ctx context.Context, actor entities.Actor, requestID uuid.UUID) (*entities.ApplicationView, error)
}
