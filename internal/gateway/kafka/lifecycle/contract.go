package lifecycle

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=lifecycle_test

import (
	"deliveryhub/pkg/logger"
)

type publisherLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
