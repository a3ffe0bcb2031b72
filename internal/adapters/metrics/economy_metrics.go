package metrics

import "github.com/prometheus/client_golang/prometheus"

// EconomyMetricsCollector handles organization ledger metrics.
type EconomyMetricsCollector struct {
	settlementsTotal *prometheus.CounterVec
	incomeUSD        *prometheus.CounterVec
	upkeepUSD        *prometheus.CounterVec
	boostPurchases   *prometheus.CounterVec
	boostSpendUSD    *prometheus.CounterVec
	techUnlocks      *prometheus.CounterVec
}

func NewEconomyMetricsCollector() *EconomyMetricsCollector {
	return &EconomyMetricsCollector{
		settlementsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Subsystem: subsystem,
				Name: "ledger_settlements_total", Help: "Total ledger settlements by organization"},
			[]string{"org_id"},
		),
		incomeUSD: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Subsystem: subsystem,
				Name: "ledger_income_usd_total", Help: "Total USD income accrued by organization"},
			[]string{"org_id"},
		),
		upkeepUSD: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Subsystem: subsystem,
				Name: "ledger_upkeep_usd_total", Help: "Total USD research team upkeep deducted by organization"},
			[]string{"org_id"},
		),
		boostPurchases: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Subsystem: subsystem,
				Name: "boost_purchases_total", Help: "Total LEO boost purchases by organization"},
			[]string{"org_id"},
		),
		boostSpendUSD: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Subsystem: subsystem,
				Name: "boost_spend_usd_total", Help: "Total USD spent on LEO boosts by organization"},
			[]string{"org_id"},
		),
		techUnlocks: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Subsystem: subsystem,
				Name: "tech_unlocks_total", Help: "Total technology unlocks by organization and tech id"},
			[]string{"org_id", "tech_id"},
		),
	}
}

func (c *EconomyMetricsCollector) Register() error {
	if Registry == nil {
		return nil
	}
	for _, m := range []prometheus.Collector{
		c.settlementsTotal, c.incomeUSD, c.upkeepUSD, c.boostPurchases, c.boostSpendUSD, c.techUnlocks,
	} {
		if err := Registry.Register(m); err != nil {
			return err
		}
	}
	return nil
}

func (c *EconomyMetricsCollector) RecordSettle(orgID string, incomeUSD, upkeepUSD float64) {
	c.settlementsTotal.WithLabelValues(orgID).Inc()
	c.incomeUSD.WithLabelValues(orgID).Add(incomeUSD)
	c.upkeepUSD.WithLabelValues(orgID).Add(upkeepUSD)
}

func (c *EconomyMetricsCollector) RecordBoostPurchase(orgID string, costUSD float64) {
	c.boostPurchases.WithLabelValues(orgID).Inc()
	c.boostSpendUSD.WithLabelValues(orgID).Add(costUSD)
}

func (c *EconomyMetricsCollector) RecordTechUnlock(orgID, techID string, pointsCost float64) {
	c.techUnlocks.WithLabelValues(orgID, techID).Inc()
}
