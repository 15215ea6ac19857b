package application_accept_post

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=application_accept_post_test

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
	AcceptApplication(ctx context.Context, actor entities.Actor, applicationID uuid.UUID) (*entities.DeliveryRequestView, error)
}
