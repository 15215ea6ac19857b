package lifecycle

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delivery_request_transitions_total",
			Help: "Committed delivery request state changes",
		},
		[]string{"event"},
	)

	ClaimConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "delivery_request_claim_conflicts_total",
			Help: "Open pool claims lost to a concurrent claimer",
		},
	)
)
