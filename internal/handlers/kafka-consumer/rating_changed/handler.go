package rating_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"deliveryhub/internal/apperr"
	"deliveryhub/pkg/logger"

	"github.com/IBM/sarama"
)

type Handler struct {
	ratingService            Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, ratingService Service, timeout time.Duration) *Handler {
	return &Handler{
		ratingService:            ratingService,
		log:                      log,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("rating.changed: claim closed, exiting ConsumeClaim")
				return nil
			}

			if stop := h.messageProcessing(sess, message); stop {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("rating.changed: session done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles one message and reports whether ConsumeClaim
// must stop. A message that was not marked is redelivered to the group.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event ratingChangedEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		h.log.Warn("rating.changed: bad message",
			logger.ErrorField(err),
			logger.NewField("offset", message.Offset),
		)
		sess.MarkMessage(message, "")
		return false
	}

	fields := []logger.Field{
		logger.NewField("transporter_id", event.TransporterID.String()),
		logger.NewField("offset", message.Offset),
	}

	applied, err := h.ratingService.ApplyRatingChange(ctx, event.toDomain())
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			h.log.Warn("rating.changed: interrupted, message will be redelivered",
				append(fields, logger.ErrorField(err))...)
			return true

		case errors.Is(err, apperr.ErrValidation):
			h.log.Warn("rating.changed: invalid snapshot skipped",
				append(fields, logger.ErrorField(err))...)

		default:
			h.log.Error("rating.changed: apply snapshot failed",
				append(fields, logger.ErrorField(err))...)
		}
		sess.MarkMessage(message, "")
		return false
	}

	h.log.Info("rating.changed: processed", append(fields, logger.NewField("applied", applied))...)
	sess.MarkMessage(message, "")
	return false
}
