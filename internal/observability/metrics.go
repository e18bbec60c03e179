package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "temp_heatmap"

// Metrics holds the Prometheus counters, histograms, and gauges for the heatmap service.
type Metrics struct {
	// Dataset loading.
	Fetches            *prometheus.CounterVec // labels: outcome={success,error,invalid}
	FetchDuration      prometheus.Histogram
	ObservationsLoaded prometheus.Gauge
	Cache              *prometheus.CounterVec // labels: result={hit,miss}

	// Chart building.
	ChartsBuilt            prometheus.Counter
	ChartErrors            prometheus.Counter
	ChartBuildDuration     prometheus.Histogram
	UnbucketedObservations prometheus.Gauge

	// Export.
	ObservationsPublished prometheus.Counter
	PublishErrors         prometheus.Counter
}

func newMetrics(withHelp bool) *Metrics {
	help := func(s string) string {
		if withHelp {
			return s
		}
		return ""
	}
	return &Metrics{
		Fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_fetches_total",
			Help:      help("Dataset loads by outcome."),
		}, []string{"outcome"}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dataset_fetch_duration_seconds",
			Help:      help("Duration of a dataset fetch including the body read."),
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		ObservationsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "observations_loaded",
			Help:      help("Number of observations in the most recently loaded dataset."),
		}),
		Cache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_cache_total",
			Help:      help("Dataset cache lookups by result."),
		}, []string{"result"}),
		ChartsBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "charts_built_total",
			Help:      help("Total heatmaps computed."),
		}),
		ChartErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chart_errors_total",
			Help:      help("Total heatmap builds that failed to load or compute."),
		}),
		ChartBuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "chart_build_duration_seconds",
			Help:      help("Duration of load plus chart computation."),
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		UnbucketedObservations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "unbucketed_observations",
			Help:      help("Observations in the last chart whose temperature matched no color bucket."),
		}),
		ObservationsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "observations_published_total",
			Help:      help("Total observations written to the sink topic."),
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "publish_errors_total",
			Help:      help("Total failed batch publishes."),
		}),
	}
}

// NewMetrics creates and registers all service metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics(true)

	prometheus.MustRegister(
		m.Fetches,
		m.FetchDuration,
		m.ObservationsLoaded,
		m.Cache,
		m.ChartsBuilt,
		m.ChartErrors,
		m.ChartBuildDuration,
		m.UnbucketedObservations,
		m.ObservationsPublished,
		m.PublishErrors,
	)

	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics(false)
}
