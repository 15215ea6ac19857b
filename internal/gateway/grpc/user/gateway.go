package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"deliveryhub/internal/entities"
	retrierconfig "deliveryhub/pkg/retrier"
	"deliveryhub/pkg/retrier/backoff_adapter"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	serviceName = "user-directory"

	getUserMethod = "/userdirectory.v1.UserDirectory/GetUser"
)

const (
	initialInterval = 50 * time.Millisecond
	maxInterval     = 500 * time.Millisecond
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

var ErrUserNotFound = errors.New("user not found in directory")

type UserGateway struct {
	client         client
	retrier        retrier
	requestTimeout time.Duration
}

func New(client client, requestTimeout time.Duration) *UserGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableCode,
	}

	return &UserGateway{
		client:         client,
		retrier:        backoff_adapter.New(retryConfig),
		requestTimeout: requestTimeout,
	}
}

func (g *UserGateway) GetUser(ctx context.Context, userID uuid.UUID) (*entities.UserInfo, error) {
	req := wrapperspb.String(userID.String())
	resp := &structpb.Struct{}

	err := g.executeWithMetrics(ctx, "GetUser", func(ctx context.Context) error {
		if g.requestTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, g.requestTimeout)
			defer cancel()
		}
		return g.client.Invoke(ctx, getUserMethod, req, resp)
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("gateway user, get user %s: %w", userID, ErrUserNotFound)
		}
		return nil, fmt.Errorf("gateway user, get user %s: %w", userID, err)
	}

	user, err := toDomain(resp)
	if err != nil {
		return nil, fmt.Errorf("gateway user, decode user %s: %w", userID, err)
	}
	return user, nil
}

func isRetryableCode(err error) bool {
	if err == nil {
		return false
	}
	st, ok := status.FromError(err)
	if !ok {
		return false
	}

	switch st.Code() {
	case codes.ResourceExhausted,
		codes.Unavailable,
		codes.DeadlineExceeded:
		return true
	default:
		return false
	}
}

// executeWithMetrics records latency over all attempts and counts calls that
// needed a retry.
func (g *UserGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	grpcCode := getGRPCCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, grpcCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, grpcCode).Inc()
	}

	return err
}

func getGRPCCode(err error) string {
	if err == nil {
		return "OK"
	}
	if st, ok := status.FromError(err); ok {
		return st.Code().String()
	}
	return "UNKNOWN"
}
