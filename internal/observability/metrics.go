package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// locate run. They are served on /metrics when a metrics address is
// configured, which is mainly useful for long batch runs.
type Metrics struct {
	FootprintsLoaded  prometheus.Gauge
	FootprintsSkipped prometheus.Gauge
	IndexReady        prometheus.Gauge
	IndexBuildSeconds prometheus.Gauge

	TargetsProcessed prometheus.Counter
	Matches          prometheus.Counter
	QueryDuration    prometheus.Histogram
}

// NewMetrics creates and registers all metrics with the default Prometheus
// registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		FootprintsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tesslocate",
			Name:      "footprints_loaded",
			Help:      "Footprint polygons successfully parsed into the index.",
		}),
		FootprintsSkipped: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tesslocate",
			Name:      "footprints_skipped",
			Help:      "Footprint records skipped during the index build because they failed to parse.",
		}),
		IndexReady: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tesslocate",
			Name:      "index_ready",
			Help:      "1 once the footprint index is built and queryable.",
		}),
		IndexBuildSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tesslocate",
			Name:      "index_build_seconds",
			Help:      "Wall-clock time spent building the footprint index.",
		}),
		TargetsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tesslocate",
			Name:      "targets_processed_total",
			Help:      "Targets whose containment query has completed.",
		}),
		Matches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tesslocate",
			Name:      "matches_total",
			Help:      "Total footprint matches across all processed targets.",
		}),
		QueryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "tesslocate",
			Name:      "query_duration_seconds",
			Help:      "Duration of a single containment query.",
			Buckets:   []float64{1e-6, 5e-6, 1e-5, 5e-5, 1e-4, 5e-4, 1e-3, 5e-3},
		}),
	}

	prometheus.MustRegister(
		m.FootprintsLoaded,
		m.FootprintsSkipped,
		m.IndexReady,
		m.IndexBuildSeconds,
		m.TargetsProcessed,
		m.Matches,
		m.QueryDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics with no registration, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		FootprintsLoaded:  prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "tesslocate", Name: "footprints_loaded"}),
		FootprintsSkipped: prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "tesslocate", Name: "footprints_skipped"}),
		IndexReady:        prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "tesslocate", Name: "index_ready"}),
		IndexBuildSeconds: prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "tesslocate", Name: "index_build_seconds"}),
		TargetsProcessed:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "tesslocate", Name: "targets_processed_total"}),
		Matches:           prometheus.NewCounter(prometheus.CounterOpts{Namespace: "tesslocate", Name: "matches_total"}),
		QueryDuration:     prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "tesslocate", Name: "query_duration_seconds"}),
	}
}
