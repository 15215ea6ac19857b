package rating_changed

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rating_changed_test

import (
	"context"

	"deliveryhub/internal/entities"
	"deliveryhub/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}

type Service interface {
	ApplyRatingChange(ctx context.Context, snapshot entities.RatingSnapshot) (bool, error)
}
