package httpx

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=httpx_test

import "deliveryhub/pkg/logger"

type Logger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
