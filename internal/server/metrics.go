package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	calculationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ficalc_calculations_total",
		Help: "Calculator submissions processed, by outcome.",
	}, []string{"outcome"})

	calculationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ficalc_calculation_duration_seconds",
		Help:    "Wall time of one full calculation session.",
		Buckets: prometheus.DefBuckets,
	})
)
