package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	application "deliveryhub/internal/app"
	"deliveryhub/internal/handlers/rest/application_accept_post"
	"deliveryhub/internal/handlers/rest/applications_my_get"
	"deliveryhub/internal/handlers/rest/deliveries_assigned_get"
	"deliveryhub/internal/handlers/rest/deliveries_available_get"
	"deliveryhub/internal/handlers/rest/deliveries_my_get"
	"deliveryhub/internal/handlers/rest/delivery_applications_get"
	"deliveryhub/internal/handlers/rest/delivery_apply_post"
	"deliveryhub/internal/handlers/rest/delivery_cancel_post"
	"deliveryhub/internal/handlers/rest/delivery_claim_post"
	"deliveryhub/internal/handlers/rest/delivery_decline_dismiss_put"
	"deliveryhub/internal/handlers/rest/delivery_decline_post"
	"deliveryhub/internal/handlers/rest/delivery_get"
	"deliveryhub/internal/handlers/rest/delivery_offer_accept_post"
	"deliveryhub/internal/handlers/rest/delivery_post"
	"deliveryhub/internal/handlers/rest/delivery_status_put"
	"deliveryhub/internal/handlers/rest/healthcheck_head"
	"deliveryhub/internal/handlers/rest/ping_get"
	"deliveryhub/internal/handlers/rest/transporter_pricing_get"
	"deliveryhub/internal/handlers/rest/transporter_pricing_put"
	"deliveryhub/internal/pkg/auth"
	"deliveryhub/internal/pkg/config"
	"deliveryhub/internal/pkg/dotenv"
	"deliveryhub/internal/pkg/grpcclient"
	"deliveryhub/internal/pkg/kafka"
	metrics_system "deliveryhub/internal/pkg/metrics"
	"deliveryhub/internal/pkg/middlewares/actor"
	"deliveryhub/internal/pkg/middlewares/graceful_shutdown"
	"deliveryhub/internal/pkg/middlewares/metrics"
	"deliveryhub/internal/pkg/middlewares/rate_limiter"
	"deliveryhub/internal/pkg/middlewares/timeout"
	"deliveryhub/internal/pkg/postgres"
	"deliveryhub/pkg/logger"
	"deliveryhub/pkg/logger/zap_adapter"
	"deliveryhub/pkg/token_bucket"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
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
	mainLog := appLogger.With(logger.NewField("app", "service"))

	switch {
	case envErr != nil:
		mainLog.Warn("env files not loaded", logger.ErrorField(envErr))
	case !loaded:
		mainLog.Info("no .env file found, using process environment")
	}

	mainLog.Info("starting deliveryhub")

	if err := run(context.Background(), cfg, appLogger); err != nil {
		mainLog.Error("application failed", logger.ErrorField(err))
		return
	}
}

//nolint:contextcheck // shutdown contexts derive from context.Background on purpose
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, log, pool); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}

	conn, err := grpcclient.NewConnClient(ctx, log, &cfg.UserDirectory)
	if err != nil {
		return fmt.Errorf("gRPC client: %w", err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.Error("failed to close gRPC connection", logger.ErrorField(err))
		}
	}()

	producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		if err := producer.Close(); err != nil {
			log.Error("failed to close kafka producer", logger.ErrorField(err))
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, conn, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx, metrics_system.DefaultCollectInterval, pool)

	// ongoingCtx is the BaseContext of every connection. SIGTERM does not
	// cancel it; it is cancelled after server.Shutdown so in-flight
	// requests can finish.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	router := initRouter(ongoingCtx, log, &isShuttingDown, businessApp, pool, cfg)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		log.Info("server starting", logger.NewField("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown, pool),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			log.Info("pprof server starting", logger.NewField("port", cfg.Server.PprofPort))
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil channel when pprof is disabled
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	log.Info("draining requests")

	// ctx is already cancelled here.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var pprofErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		pprofErr = pprofServer.Shutdown(shutdownCtx)
		if pprofErr != nil {
			log.Error("pprof server shutdown error", logger.ErrorField(pprofErr))
		} else {
			log.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || pprofErr != nil {
		log.Info("graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	businessApp.BackgroundWorkers.Wait()

	log.Info("server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	db healthcheck_head.Pinger,
	cfg *config.Config,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))
	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(
		log,
		cfg.Server.RateLimiterQPS,
		token_bucket.NewTokenBucket(cfg.Server.RateLimiterBurst, float64(cfg.Server.RateLimiterQPS)),
	))

	router.Handle("/metrics", promhttp.Handler())
	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, db)).Methods(http.MethodHead)
	router.Handle("/ping", ping_get.New(log)).Methods(http.MethodGet)

	deliveries := router.PathPrefix("/deliveries").Subrouter()
	deliveries.Use(actor.Middleware(log, auth.NewValidator(&cfg.Auth)))

	// static segments go before /{id} so they are not read as ids
	deliveries.Handle("", delivery_post.New(log, app.ServiceLifecycle)).Methods(http.MethodPost)
	deliveries.Handle("/my", deliveries_my_get.New(log, app.ServiceLifecycle)).Methods(http.MethodGet)
	deliveries.Handle("/available", deliveries_available_get.New(log, app.ServiceLifecycle)).Methods(http.MethodGet)
	deliveries.Handle("/assigned", deliveries_assigned_get.New(log, app.ServiceLifecycle)).Methods(http.MethodGet)
	deliveries.Handle("/applications/my", applications_my_get.New(log, app.ServiceBidding)).Methods(http.MethodGet)
	deliveries.Handle("/applications/{id}/accept", application_accept_post.New(log, app.ServiceBidding)).Methods(http.MethodPost)
	deliveries.Handle("/pricing", transporter_pricing_get.New(log, app.ServicePricing)).Methods(http.MethodGet)
	deliveries.Handle("/pricing", transporter_pricing_put.New(log, app.ServicePricing)).Methods(http.MethodPut)

	deliveries.Handle("/{id}", delivery_get.New(log, app.ServiceLifecycle)).Methods(http.MethodGet)
	deliveries.Handle("/{id}/accept", delivery_claim_post.New(log, app.ServiceLifecycle)).Methods(http.MethodPost)
	deliveries.Handle("/{id}/accept-request", delivery_offer_accept_post.New(log, app.ServiceLifecycle)).Methods(http.MethodPost)
	deliveries.Handle("/{id}/status", delivery_status_put.New(log, app.ServiceLifecycle)).Methods(http.MethodPut)
	deliveries.Handle("/{id}/decline", delivery_decline_post.New(log, app.ServiceLifecycle)).Methods(http.MethodPost)
	deliveries.Handle("/{id}/dismiss-decline", delivery_decline_dismiss_put.New(log, app.ServiceLifecycle)).Methods(http.MethodPut)
	deliveries.Handle("/{id}/cancel", delivery_cancel_post.New(log, app.ServiceLifecycle)).Methods(http.MethodPost)
	deliveries.Handle("/{id}/apply", delivery_apply_post.New(log, app.ServiceBidding)).Methods(http.MethodPost)
	deliveries.Handle("/{id}/applications", delivery_applications_get.New(log, app.ServiceBidding)).Methods(http.MethodGet)

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool, db healthcheck_head.Pinger) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, db)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
