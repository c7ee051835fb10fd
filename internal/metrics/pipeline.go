package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search pipeline Prometheus metrics.
var (
	VariantRetrievalsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "drivesearch",
			Name:      "variant_retrievals_total",
			Help:      "Per-variant retrieval outcomes in the fan-out stage",
		},
		[]string{"kind", "status"}, // status: success / embed_error / query_error
	)

	RerankDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "drivesearch",
			Name:      "rerank_duration_seconds",
			Help:      "Cross-encoder rerank invocation duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)

	RerankFallbacksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "drivesearch",
			Name:      "rerank_fallbacks_total",
			Help:      "Searches that fell back to vector-only ordering",
		},
	)

	HydrationMissesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "drivesearch",
			Name:      "hydration_misses_total",
			Help:      "Candidates dropped because full text could not be fetched",
		},
	)
)

// RegisterPipelineMetrics registers pipeline metrics explicitly (no init()).
func RegisterPipelineMetrics() {
	prometheus.MustRegister(
		VariantRetrievalsTotal,
		RerankDuration,
		RerankFallbacksTotal,
		HydrationMissesTotal,
	)
}
