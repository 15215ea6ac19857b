package kafka

import (
	"context"
	"fmt"

	"deliveryhub/internal/pkg/config"
	"deliveryhub/pkg/logger"

	"github.com/IBM/sarama"
)

type Consumer struct {
	log     logger.Logger
	client  sarama.ConsumerGroup
	topics  []string
	handler sarama.ConsumerGroupHandler
}

func newConsumerConfig(cfg *config.Kafka) (*sarama.Config, error) {
	saramaConfig, err := newBaseConfig(cfg.Sarama.Version)
	if err != nil {
		return nil, err
	}

	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = cfg.Sarama.ConsumerOffsetsAutocommit
	saramaConfig.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{
		sarama.NewBalanceStrategyRoundRobin(),
	}

	return saramaConfig, nil
}

// NewConsumer joins cfg.ConsumerGroup and subscribes handler to topics.
// It fails if the brokers stay unreachable for the whole retry window.
func NewConsumer(
	ctx context.Context,
	log logger.Logger,
	cfg *config.Kafka,
	topics []string,
	handler sarama.ConsumerGroupHandler,
) (*Consumer, error) {
	saramaConfig, err := newConsumerConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("build consumer config: %w", err)
	}

	kafkaLog := log.With(
		logger.NewField("brokers", cfg.Brokers),
		logger.NewField("group", cfg.ConsumerGroup),
		logger.NewField("topics", topics),
	)

	if err := pingKafka(ctx, kafkaLog, cfg.Brokers, saramaConfig); err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	client, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.ConsumerGroup, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("create consumer group: %w", err)
	}

	return &Consumer{
		log:     kafkaLog,
		client:  client,
		topics:  topics,
		handler: handler,
	}, nil
}

// Start blocks until ctx is cancelled or the group returns an error.
// Consume returns on every rebalance, so it is called in a loop.
func (c *Consumer) Start(ctx context.Context) error {
	c.log.Info("kafka consumer starting")

	for {
		if err := c.client.Consume(ctx, c.topics, c.handler); err != nil {
			c.log.Error("kafka consume failed", logger.ErrorField(err))
			return fmt.Errorf("consume: %w", err)
		}

		if ctx.Err() != nil {
			c.log.Info("kafka consumer stopping")
			return ctx.Err()
		}
	}
}

func (c *Consumer) Close() error {
	return c.client.Close()
}
