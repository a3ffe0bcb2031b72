package metrics

import "github.com/prometheus/client_golang/prometheus"

// RoutingMetricsCollector handles transfer-matrix regeneration metrics.
type RoutingMetricsCollector struct {
	regenerationsTotal prometheus.Counter
	regenerationSize   prometheus.Histogram
	regenerationTime   prometheus.Histogram
	routeMisses        *prometheus.CounterVec
}

func NewRoutingMetricsCollector() *RoutingMetricsCollector {
	return &RoutingMetricsCollector{
		regenerationsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{Namespace: namespace, Subsystem: subsystem,
				Name: "matrix_regenerations_total", Help: "Total transfer-matrix regenerations"},
		),
		regenerationSize: prometheus.NewHistogram(
			prometheus.HistogramOpts{Namespace: namespace, Subsystem: subsystem,
				Name: "matrix_entries_per_regeneration", Help: "Number of entries written per matrix regeneration",
				Buckets: []float64{10, 50, 100, 500, 1000, 5000, 10000}},
		),
		regenerationTime: prometheus.NewHistogram(
			prometheus.HistogramOpts{Namespace: namespace, Subsystem: subsystem,
				Name: "matrix_regeneration_duration_seconds", Help: "Transfer-matrix regeneration duration",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 30}},
		),
		routeMisses: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Subsystem: subsystem,
				Name: "route_misses_total", Help: "Total route lookups with no cached entry"},
			[]string{"from_location_id", "to_location_id"},
		),
	}
}

func (c *RoutingMetricsCollector) Register() error {
	if Registry == nil {
		return nil
	}
	for _, m := range []prometheus.Collector{c.regenerationsTotal, c.regenerationSize, c.regenerationTime, c.routeMisses} {
		if err := Registry.Register(m); err != nil {
			return err
		}
	}
	return nil
}

func (c *RoutingMetricsCollector) RecordMatrixRegeneration(entryCount int, durationSeconds float64) {
	c.regenerationsTotal.Inc()
	c.regenerationSize.Observe(float64(entryCount))
	c.regenerationTime.Observe(durationSeconds)
}

func (c *RoutingMetricsCollector) RecordRouteMiss(fromLocationID, toLocationID string) {
	c.routeMisses.WithLabelValues(fromLocationID, toLocationID).Inc()
}
