package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CommandMetricsCollector records mediator command/query execution metrics.
type CommandMetricsCollector struct {
	executionsTotal *prometheus.CounterVec
	duration        *prometheus.HistogramVec
}

func NewCommandMetricsCollector() *CommandMetricsCollector {
	return &CommandMetricsCollector{
		executionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "command_executions_total",
				Help:      "Total mediator command/query executions by name and outcome",
			},
			[]string{"command", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "command_duration_seconds",
				Help:      "Mediator command/query execution duration",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"command"},
		),
	}
}

func (c *CommandMetricsCollector) Register() error {
	if Registry == nil {
		return nil
	}
	for _, m := range []prometheus.Collector{c.executionsTotal, c.duration} {
		if err := Registry.Register(m); err != nil {
			return err
		}
	}
	return nil
}

func (c *CommandMetricsCollector) RecordCommandExecution(name string, durationSeconds float64, success bool) {
	outcome := "ok"
	if !success {
		outcome = "error"
	}
	c.executionsTotal.WithLabelValues(name, outcome).Inc()
	c.duration.WithLabelValues(name).Observe(durationSeconds)
}
