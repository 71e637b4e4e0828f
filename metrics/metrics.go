package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	SimulationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "roadmap_simulations_total", Help: "Simulation requests by result"},
		[]string{"result"},
	)
	TradesPerRun = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "roadmap_trades_per_run",
			Help:    "Trades emitted per successful simulation",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
	)
)

func init() {
	prometheus.MustRegister(SimulationsTotal, TradesPerRun)
}
