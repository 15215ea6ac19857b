package bidding

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ApplicationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "delivery_applications_total",
		Help: "Delivery application outcomes",
	},
	[]string{"outcome"},
)
