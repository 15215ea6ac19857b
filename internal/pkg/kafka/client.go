package kafka

import (
	"context"
	"fmt"
	"time"

	"deliveryhub/pkg/logger"
	retrierconfig "deliveryhub/pkg/retrier"
	"deliveryhub/pkg/retrier/backoff_adapter"

	"github.com/IBM/sarama"
)

const (
	initialInterval = 1 * time.Second
	maxInterval     = 30 * time.Second
	maxElapsedTime  = 2 * time.Minute
	randomization   = 0.5
	multiplier      = 2
)

func newBaseConfig(version string) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	parsed, err := sarama.ParseKafkaVersion(version)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", version, err)
	}
	cfg.Version = parsed
	cfg.ClientID = "deliveryhub"

	return cfg, nil
}

// pingKafka waits until the brokers answer a metadata request.
func pingKafka(ctx context.Context, log logger.Logger, brokers []string, cfg *sarama.Config) error {
	retrier := backoff_adapter.New(retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
	})

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.Info("attempting kafka connection", logger.NewField("attempt", attempt))

		client, err := sarama.NewClient(brokers, cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := client.Close(); err != nil {
				log.Warn("close kafka connection check client", logger.ErrorField(err))
			}
		}()

		_, err = client.Topics()
		return err
	})
	if err != nil {
		log.Error("kafka connection failed after retries",
			logger.ErrorField(err),
			logger.NewField("attempts", attempt),
		)
		return fmt.Errorf("connect to kafka: %w", err)
	}

	log.Info("kafka connection established", logger.NewField("attempts", attempt))
	return nil
}
