package rate_limiter

import "deliveryhub/pkg/logger"

type Limiter interface {
	Allow() bool
}

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
