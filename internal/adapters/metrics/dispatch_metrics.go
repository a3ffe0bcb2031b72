package metrics

import "github.com/prometheus/client_golang/prometheus"

// DispatchMetricsCollector handles ship dispatch and arrival metrics.
type DispatchMetricsCollector struct {
	dispatchesTotal    *prometheus.CounterVec
	dispatchFuelKg     *prometheus.CounterVec
	dispatchesRejected *prometheus.CounterVec
	arrivalsSettled    prometheus.Counter
}

func NewDispatchMetricsCollector() *DispatchMetricsCollector {
	return &DispatchMetricsCollector{
		dispatchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace, Subsystem: subsystem,
				Name: "dispatches_total", Help: "Total ship dispatches by route",
			},
			[]string{"from_location_id", "to_location_id"},
		),
		dispatchFuelKg: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace, Subsystem: subsystem,
				Name: "dispatch_fuel_consumed_kg_total", Help: "Total fuel mass consumed by dispatches",
			},
			[]string{"from_location_id", "to_location_id"},
		),
		dispatchesRejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace, Subsystem: subsystem,
				Name: "dispatches_rejected_total", Help: "Total dispatch attempts rejected by reason",
			},
			[]string{"reason"},
		),
		arrivalsSettled: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace, Subsystem: subsystem,
				Name: "arrivals_settled_total", Help: "Total ships promoted from in-transit to docked",
			},
		),
	}
}

func (c *DispatchMetricsCollector) Register() error {
	if Registry == nil {
		return nil
	}
	for _, m := range []prometheus.Collector{c.dispatchesTotal, c.dispatchFuelKg, c.dispatchesRejected, c.arrivalsSettled} {
		if err := Registry.Register(m); err != nil {
			return err
		}
	}
	return nil
}

func (c *DispatchMetricsCollector) RecordDispatch(fromLocationID, toLocationID string, fuelConsumedKg float64) {
	c.dispatchesTotal.WithLabelValues(fromLocationID, toLocationID).Inc()
	c.dispatchFuelKg.WithLabelValues(fromLocationID, toLocationID).Add(fuelConsumedKg)
}

func (c *DispatchMetricsCollector) RecordDispatchRejected(reason string) {
	c.dispatchesRejected.WithLabelValues(reason).Inc()
}

func (c *DispatchMetricsCollector) RecordArrivalsSettled(count int) {
	c.arrivalsSettled.Add(float64(count))
}
