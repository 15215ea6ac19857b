package postgres

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	"deliveryhub/internal/pkg/config"
	"deliveryhub/pkg/logger"
	retrierconfig "deliveryhub/pkg/retrier"
	"deliveryhub/pkg/retrier/backoff_adapter"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	maxConns          = 20
	minConns          = 5
	maxConnLifetime   = time.Hour
	healthCheckPeriod = 30 * time.Second

	initialInterval = 2 * time.Second
	maxInterval     = 30 * time.Second
	maxElapsedTime  = 2 * time.Minute
	randomization   = 0.5
	multiplier      = 2
)

func NewConnPool(ctx context.Context, log logger.Logger, cfg *config.Database) (*pgxpool.Pool, error) {
	return NewConnPoolFromDSN(ctx, log, DSN(cfg))
}

// NewConnPoolFromDSN is used when the DSN comes from elsewhere
// (integration tests get it from the container).
func NewConnPoolFromDSN(ctx context.Context, log logger.Logger, dsn string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	poolCfg.MaxConns = maxConns
	poolCfg.MinConns = minConns
	poolCfg.MaxConnLifetime = maxConnLifetime
	poolCfg.HealthCheckPeriod = healthCheckPeriod

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connection pool: %w", err)
	}

	dbLog := log.With(
		logger.NewField("host", poolCfg.ConnConfig.Host),
		logger.NewField("port", poolCfg.ConnConfig.Port),
		logger.NewField("db", poolCfg.ConnConfig.Database),
	)

	if err := pingDatabase(ctx, dbLog, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database connection: %w", err)
	}

	return pool, nil
}

func DSN(cfg *config.Database) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, cfg.Port),
		Path:     cfg.DBName,
		RawQuery: url.Values{"sslmode": []string{cfg.SSLMode}}.Encode(),
	}
	return u.String()
}

func pingDatabase(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
	var attempt uint64
	retrier := backoff_adapter.New(retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		Notify: func(err error, next time.Duration) {
			log.Warn("database is not reachable yet",
				logger.NewField("attempt", attempt),
				logger.NewField("retry_in", next.String()),
				logger.ErrorField(err),
			)
		},
	})

	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return pool.Ping(ctx)
	})
	if err != nil {
		log.Error("database connection failed after retries",
			logger.ErrorField(err),
			logger.NewField("attempts", attempt),
		)
		return fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("database connection established",
		logger.NewField("attempts", attempt),
	)
	return nil
}
