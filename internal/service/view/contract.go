//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=view_test
package view

import (
	"context"

	"deliveryhub/internal/entities"
	"deliveryhub/pkg/logger"

	"github.com/google/uuid"
)

type UserDirectory interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*entities.UserInfo, error)
}

type builderLogger interface {
	Warn(msg string, fields ...logger.Field)
}
