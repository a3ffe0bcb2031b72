package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// Namespace for all metrics
	namespace = "orbitalsim"
	// Subsystem for daemon metrics
	subsystem = "daemon"
)

var (
	// Registry is the global Prometheus registry for all metrics
	Registry *prometheus.Registry

	globalDispatchCollector DispatchMetricsRecorder
	globalEconomyCollector  EconomyMetricsRecorder
	globalRoutingCollector  RoutingMetricsRecorder
)

// DispatchMetricsRecorder records ship dispatch/arrival events.
type DispatchMetricsRecorder interface {
	RecordDispatch(fromLocationID, toLocationID string, fuelConsumedKg float64)
	RecordDispatchRejected(reason string)
	RecordArrivalsSettled(count int)
}

// EconomyMetricsRecorder records organization ledger events.
type EconomyMetricsRecorder interface {
	RecordSettle(orgID string, incomeUSD, upkeepUSD float64)
	RecordBoostPurchase(orgID string, costUSD float64)
	RecordTechUnlock(orgID, techID string, pointsCost float64)
}

// RoutingMetricsRecorder records transfer-matrix regeneration events.
type RoutingMetricsRecorder interface {
	RecordMatrixRegeneration(entryCount int, durationSeconds float64)
	RecordRouteMiss(fromLocationID, toLocationID string)
}

// InitRegistry initializes the Prometheus registry. Call once at startup
// if metrics are enabled.
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// GetRegistry returns the global Prometheus registry, or nil if metrics
// are not initialized.
func GetRegistry() *prometheus.Registry {
	return Registry
}

// IsEnabled returns true if metrics collection is enabled.
func IsEnabled() bool {
	return Registry != nil
}

func SetGlobalDispatchCollector(c DispatchMetricsRecorder) { globalDispatchCollector = c }
func SetGlobalEconomyCollector(c EconomyMetricsRecorder)   { globalEconomyCollector = c }
func SetGlobalRoutingCollector(c RoutingMetricsRecorder)   { globalRoutingCollector = c }

func RecordDispatch(fromLocationID, toLocationID string, fuelConsumedKg float64) {
	if globalDispatchCollector != nil {
		globalDispatchCollector.RecordDispatch(fromLocationID, toLocationID, fuelConsumedKg)
	}
}

func RecordDispatchRejected(reason string) {
	if globalDispatchCollector != nil {
		globalDispatchCollector.RecordDispatchRejected(reason)
	}
}

func RecordArrivalsSettled(count int) {
	if globalDispatchCollector != nil {
		globalDispatchCollector.RecordArrivalsSettled(count)
	}
}

func RecordSettle(orgID string, incomeUSD, upkeepUSD float64) {
	if globalEconomyCollector != nil {
		globalEconomyCollector.RecordSettle(orgID, incomeUSD, upkeepUSD)
	}
}

func RecordBoostPurchase(orgID string, costUSD float64) {
	if globalEconomyCollector != nil {
		globalEconomyCollector.RecordBoostPurchase(orgID, costUSD)
	}
}

func RecordTechUnlock(orgID, techID string, pointsCost float64) {
	if globalEconomyCollector != nil {
		globalEconomyCollector.RecordTechUnlock(orgID, techID, pointsCost)
	}
}

func RecordMatrixRegeneration(entryCount int, durationSeconds float64) {
	if globalRoutingCollector != nil {
		globalRoutingCollector.RecordMatrixRegeneration(entryCount, durationSeconds)
	}
}

func RecordRouteMiss(fromLocationID, toLocationID string) {
	if globalRoutingCollector != nil {
		globalRoutingCollector.RecordRouteMiss(fromLocationID, toLocationID)
	}
}
