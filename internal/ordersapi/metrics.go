package ordersapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	refreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orderlist_refresh_total",
			Help: "Order list refreshes by outcome",
		},
		[]string{"outcome"},
	)

	refreshRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orderlist_refresh_retries_total",
		Help: "Retried order list requests",
	})

	refreshDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "orderlist_refresh_duration_seconds",
		Help:    "Duration of order list refreshes including retries",
		Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	})
)
