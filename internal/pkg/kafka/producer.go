package kafka

import (
	"context"
	"fmt"
	"time"

	"deliveryhub/internal/pkg/config"
	"deliveryhub/pkg/logger"

	"github.com/IBM/sarama"
)

const producerTimeout = 5 * time.Second

func newProducerConfig(cfg *config.Kafka) (*sarama.Config, error) {
	saramaConfig, err := newBaseConfig(cfg.Sarama.Version)
	if err != nil {
		return nil, err
	}

	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.Retry.Max = 3
	saramaConfig.Producer.Timeout = producerTimeout
	// same key, same partition: events of one request stay ordered
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	return saramaConfig, nil
}

// NewSyncProducer connects a producer to cfg.Brokers, retrying until the
// cluster answers or the retry window closes.
func NewSyncProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (sarama.SyncProducer, error) {
	saramaConfig, err := newProducerConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("build producer config: %w", err)
	}

	kafkaLog := log.With(logger.NewField("brokers", cfg.Brokers))

	if err := pingKafka(ctx, kafkaLog, cfg.Brokers, saramaConfig); err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("create sync producer: %w", err)
	}

	return producer, nil
}
