package grpcclient

import (
	"context"
	"fmt"
	"time"

	"deliveryhub/internal/pkg/config"
	"deliveryhub/pkg/logger"
	retrierconfig "deliveryhub/pkg/retrier"
	"deliveryhub/pkg/retrier/backoff_adapter"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
)

const (
	KeepaliveTime                = 5 * time.Minute
	KeepaliveTimeout             = 3 * time.Second
	KeepalivePermitWithoutStream = false

	initialInterval = 1 * time.Second
	maxInterval     = 30 * time.Second
	maxElapsedTime  = 2 * time.Minute
	randomization   = 0.5
	multiplier      = 2
)

// NewConnClient dials the user directory and waits until its health
// service answers SERVING.
func NewConnClient(ctx context.Context, log logger.Logger, cfg *config.UserDirectory) (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(
		cfg.GRPCHost,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                KeepaliveTime,
			Timeout:             KeepaliveTimeout,
			PermitWithoutStream: KeepalivePermitWithoutStream,
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC client: %w", err)
	}

	grpcLog := log.With(
		logger.NewField("component", "grpc-client"),
		logger.NewField("host", cfg.GRPCHost),
	)

	err = pingGRPC(ctx, grpcLog, healthpb.NewHealthClient(conn))
	if err != nil {
		connCloseErr := conn.Close()
		if connCloseErr != nil {
			return nil, fmt.Errorf("gRPC connection: %w (failed to close: %v)", err, connCloseErr)
		}
		return nil, fmt.Errorf("gRPC connection: %w", err)
	}

	return conn, nil
}

func pingGRPC(ctx context.Context, log logger.Logger, client healthpb.HealthClient) error {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
	}

	retrier := backoff_adapter.New(retryConfig)

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.Info("attempting gRPC connection", logger.NewField("attempt", attempt))

		resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{})
		if err != nil {
			return err
		}
		if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
			return fmt.Errorf("user directory is %s", resp.GetStatus())
		}
		return nil
	})
	if err != nil {
		log.Error("gRPC connection failed after retries",
			logger.ErrorField(err),
			logger.NewField("attempts", attempt),
		)
		return fmt.Errorf("failed to establish gRPC connection: %w", err)
	}

	log.Info("gRPC connection established", logger.NewField("attempts", attempt))
	return nil
}
