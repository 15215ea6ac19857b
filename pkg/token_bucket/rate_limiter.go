package token_bucket

import (
	"sync"
	"time"

	"deliveryhub/pkg/clock"
)

// TokenBucket admits a request when a whole token is available.
// Tokens are refilled continuously at refillRate per second up to capacity.
type TokenBucket struct {
	mu         sync.Mutex
	clock      clock.Clock
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill time.Time
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return NewTokenBucketWithClock(capacity, refillRate, clock.NewRealClock())
}

func NewTokenBucketWithClock(capacity int, refillRate float64, c clock.Clock) *TokenBucket {
	return &TokenBucket{
		clock:      c,
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: refillRate,
		lastRefill: c.Now(),
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

func (t *TokenBucket) refill() {
	now := t.clock.Now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}
	t.lastRefill = now

	t.tokens += elapsed * t.refillRate
	if t.tokens > t.capacity {
		t.tokens = t.capacity
	}
}
