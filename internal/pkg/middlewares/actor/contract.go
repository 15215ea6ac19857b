package actor

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=actor_test

import (
	"deliveryhub/internal/entities"
	"deliveryhub/pkg/logger"
)

type TokenValidator interface {
	Validate(raw string) (entities.Actor, error)
}

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
