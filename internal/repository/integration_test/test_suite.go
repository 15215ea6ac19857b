//go:build integration

// Package integration_test starts one disposable Postgres per test binary,
// applies the goose migrations and hands out a querier bound to it.
package integration_test

import (
	"context"
	"log"
	"sync"
	"testing"
	"time"

	"deliveryhub/internal/pkg/postgres"
	"deliveryhub/pkg/logger/zap_adapter"
	"deliveryhub/pkg/querier"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const postgresImage = "postgres:16-alpine"

var (
	poolInstance    *pgxpool.Pool
	querierInstance *querier.Querier
	setupOnce       sync.Once
)

func setup() {
	ctx := context.Background()
	nopLog := zap_adapter.NewNop()

	container, err := tcpostgres.Run(ctx,
		postgresImage,
		tcpostgres.WithDatabase("deliveryhub_test"),
		tcpostgres.WithUsername("test_user"),
		tcpostgres.WithPassword("test_pass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Fatalf("postgres container dsn: %v", err)
	}

	pool, err := postgres.NewConnPoolFromDSN(ctx, nopLog, dsn)
	if err != nil {
		log.Fatalf("connect to postgres container: %v", err)
	}

	if err := postgres.Migrate(ctx, nopLog, pool); err != nil {
		log.Fatalf("migrate postgres container: %v", err)
	}

	poolInstance = pool
	querierInstance = querier.New(pool, pgxv5.DefaultCtxGetter)
}

// GetPool returns the pool of the shared container. The container is
// reaped by testcontainers' ryuk when the test binary exits.
func GetPool() *pgxpool.Pool {
	setupOnce.Do(setup)
	return poolInstance
}

func GetQuerier() *querier.Querier {
	setupOnce.Do(setup)
	return querierInstance
}

func SetupDB(t *testing.T, setupSQL string) {
	t.Helper()

	if setupSQL == "" {
		GetQuerier()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSQL)
	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE delivery_application, delivery_request, transporter_pricing, transporter_rating CASCADE;
	`)
	require.NoError(t, err)
}
