package lifecycle

import (
	"context"
	"encoding/json"

	"deliveryhub/internal/entities"
	"deliveryhub/pkg/logger"

	"github.com/IBM/sarama"
)

const kindHeader = "event-kind"

// Publisher writes committed lifecycle events to a Kafka topic keyed by
// request id. Delivery failures are logged and counted; the state change
// they describe has already been committed.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	log      publisherLogger
}

func New(producer sarama.SyncProducer, topic string, log publisherLogger) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
		log:      log,
	}
}

func (p *Publisher) Publish(ctx context.Context, event entities.LifecycleEvent) {
	fields := []logger.Field{
		logger.NewField("kind", event.Kind.String()),
		logger.NewField("request_id", event.RequestID.String()),
	}

	if err := ctx.Err(); err != nil {
		p.log.Warn("lifecycle event dropped", append(fields, logger.ErrorField(err))...)
		EventsPublishedTotal.WithLabelValues(event.Kind.String(), "dropped").Inc()
		return
	}

	payload, err := json.Marshal(toMessage(event))
	if err != nil {
		p.log.Error("encode lifecycle event", append(fields, logger.ErrorField(err))...)
		EventsPublishedTotal.WithLabelValues(event.Kind.String(), "failed").Inc()
		return
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(event.RequestID.String()),
		Value:     sarama.ByteEncoder(payload),
		Timestamp: event.OccurredAt,
		Headers: []sarama.RecordHeader{
			{Key: []byte(kindHeader), Value: []byte(event.Kind.String())},
		},
	})
	if err != nil {
		p.log.Error("publish lifecycle event", append(fields, logger.ErrorField(err))...)
		EventsPublishedTotal.WithLabelValues(event.Kind.String(), "failed").Inc()
		return
	}

	EventsPublishedTotal.WithLabelValues(event.Kind.String(), "ok").Inc()
}
