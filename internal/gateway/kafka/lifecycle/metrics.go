package lifecycle

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var EventsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "lifecycle_events_published_total",
		Help: "Lifecycle events handed to Kafka, by kind and result",
	},
	[]string{"kind", "result"},
)
