package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"

	"deliveryhub/internal/generated/dto"
	"deliveryhub/pkg/logger"
)

func JSON(w http.ResponseWriter, log Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("encode JSON response", logger.ErrorField(err))
	}
}

// Error writes err as a dto.Error. Business rejections are logged at warn;
// anything else is an infrastructure failure, logged with its stack and
// hidden from the client.
func Error(w http.ResponseWriter, r *http.Request, log Logger, err error) {
	status, code, business := Classify(err)

	fields := []logger.Field{
		logger.NewField("method", r.Method),
		logger.NewField("path", r.URL.Path),
		logger.NewField("code", code),
		logger.ErrorField(err),
	}

	message := err.Error()
	if business {
		log.Warn("request rejected", fields...)
	} else {
		log.Error("request failed", append(fields, logger.NewField("details", fmt.Sprintf("%+v", err)))...)
		message = http.StatusText(status)
	}

	JSON(w, log, status, dto.Error{Code: code, Message: message})
}
