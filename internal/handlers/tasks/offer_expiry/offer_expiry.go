// Package offer_expiry reports direct offers past their acceptance window.
// Expiry itself is evaluated lazily by the lifecycle service, so the task
// only observes and never changes request state.
package offer_expiry

import (
	"context"
	"time"

	"deliveryhub/pkg/logger"
)

type OfferExpiry struct {
	log      taskLogger
	service  Service
	interval time.Duration
}

func NewOfferExpiry(log taskLogger, service Service, interval time.Duration) *OfferExpiry {
	return &OfferExpiry{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (o *OfferExpiry) TTL() time.Duration {
	return o.interval
}

func (o *OfferExpiry) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	stale, err := o.service.CountStaleOffers(ctxWithTimeout)
	if err != nil {
		return err
	}

	StaleOffers.Set(float64(stale))
	if stale > 0 {
		o.log.Info("stale direct offers", logger.NewField("count", stale))
	}

	return nil
}

func (o *OfferExpiry) Info() string {
	return "offer expiry"
}
