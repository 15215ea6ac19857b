package metrics

import "deliveryhub/pkg/logger"

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
}
