package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"deliveryhub/internal/app"
	"deliveryhub/internal/handlers/kafka-consumer/rating_changed"
	"deliveryhub/internal/handlers/rest/healthcheck_head"
	"deliveryhub/internal/pkg/config"
	"deliveryhub/internal/pkg/dotenv"
	"deliveryhub/internal/pkg/kafka"
	"deliveryhub/internal/pkg/postgres"
	"deliveryhub/pkg/logger"
	"deliveryhub/pkg/logger/zap_adapter"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
)

func main() {
	loaded, envErr := dotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.Log.Level)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With(logger.NewField("app", "worker-rating-changed"))

	switch {
	case envErr != nil:
		mainLog.Warn("env files not loaded", logger.ErrorField(envErr))
	case !loaded:
		mainLog.Info("no .env file found, using process environment")
	}

	mainLog.Info("starting rating worker")

	if err := run(context.Background(), mainLog, cfg); err != nil {
		mainLog.Error("worker failed", logger.ErrorField(err))
		return
	}
}

//nolint:contextcheck // shutdown contexts derive from context.Background on purpose
func run(ctx context.Context, log logger.Logger, cfg *config.Config) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	workerApp := app.InitializeRatingWorkerApp(pool, pgxv5.DefaultCtxGetter)

	// ongoingCtx outlives SIGTERM and is cancelled only after the health
	// server is down, letting the current message finish.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	healthServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Kafka.PortHealthcheck),
		Handler: initHealthcheckRouter(&isShuttingDown, pool),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	healthServerErr := make(chan error, 1)
	go func() {
		defer close(healthServerErr)

		log.Info("healthcheck server starting", logger.NewField("port", cfg.Kafka.PortHealthcheck))
		if err := healthServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			healthServerErr <- err
		}
	}()

	handler := rating_changed.New(
		log.With(logger.NewField("topic", cfg.Kafka.RatingTopic)),
		workerApp.RatingService,
		cfg.Kafka.Handlers.RatingChanged.ProcessTimeout,
	)

	consumer, err := kafka.NewConsumer(ctx, log, &cfg.Kafka, []string{cfg.Kafka.RatingTopic}, handler)
	if err != nil {
		return fmt.Errorf("kafka consumer: %w", err)
	}

	consumerErr := make(chan error, 1)
	go func() {
		defer close(consumerErr)

		if err := consumer.Start(ongoingCtx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, sarama.ErrClosedConsumerGroup) {
				log.Info("kafka consumer stopped gracefully")
				return
			}
			consumerErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-consumerErr:
		return fmt.Errorf("consumer: %w", err)
	case err := <-healthServerErr:
		return fmt.Errorf("healthcheck server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	log.Info("draining kafka messages")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	if err := healthServer.Shutdown(shutdownCtx); err != nil {
		log.Info("graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	stopOngoingGracefully()

	if err := consumer.Close(); err != nil {
		log.Error("close kafka consumer", logger.ErrorField(err))
	}

	log.Info("worker stopped")
	return nil
}

func initHealthcheckRouter(isShuttingDown *atomic.Bool, db healthcheck_head.Pinger) http.Handler {
	router := mux.NewRouter()
	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, db)).Methods(http.MethodHead)
	return router
}
