package offer_expiry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var StaleOffers = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "delivery_stale_direct_offers",
		Help: "Direct offers that outlived the acceptance window and still wait in REQUESTED",
	},
)
