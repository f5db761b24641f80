package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	productMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "product_mutations_total",
			Help: "Total number of successful catalog mutations by operation.",
		},
		[]string{"operation"},
	)

	catalogSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "product_catalog_size",
		Help: "Number of products currently in the catalog.",
	})
)
