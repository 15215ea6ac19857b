package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RateLimitedTotal counts requests answered with 429, per route template.
var RateLimitedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_rate_limited_requests_total",
		Help: "Requests shed by the token bucket before reaching a handler",
	},
	[]string{"route"},
)
