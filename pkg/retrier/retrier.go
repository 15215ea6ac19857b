package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

// ShouldRetryFunc reports whether err is transient.
type ShouldRetryFunc func(error) bool

// NotifyFunc is called before every sleep between attempts.
type NotifyFunc func(err error, next time.Duration)

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// nil retries every error
	ShouldRetry ShouldRetryFunc
	Notify      NotifyFunc
}
