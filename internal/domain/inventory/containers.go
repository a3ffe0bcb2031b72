package inventory

import (
	"sort"

	"github.com/coldharbor-systems/orbital-sim/internal/domain/catalog"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/parts"
)

// ResourceRollup is one resource's aggregated on-ship container state,
// summed across every container carrying it.
type ResourceRollup struct {
	ResourceID string
	Phase      Phase
	MassKg     float64
	VolumeM3   float64
}

// RollupShipContainers computes the on-ship "resource rollup" by
// summing containers per resource, then classifying each by phase.
// On-ship container state is derived from the part list, not stored
// as separate inventory rows.
func RollupShipContainers(ps []parts.Part) []ResourceRollup {
	byResource := map[string]*ResourceRollup{}
	order := []string{}

	for _, p := range ps {
		if p.Category != catalog.CategoryStorage || p.Fill == nil {
			continue
		}
		resourceID := p.ResourceID
		if resourceID == "" {
			continue
		}
		massKg := p.Fill.CargoMassKg
		volumeM3 := p.Fill.UsedM3
		if massKg <= 1e-9 && volumeM3 <= 1e-9 {
			continue
		}

		entry, ok := byResource[resourceID]
		if !ok {
			phase := ClassifyResourcePhase(resourceID, resourceID, p.MassPerM3Kg)
			entry = &ResourceRollup{ResourceID: resourceID, Phase: phase}
			byResource[resourceID] = entry
			order = append(order, resourceID)
		}
		entry.MassKg += massKg
		entry.VolumeM3 += volumeM3
	}

	out := make([]ResourceRollup, 0, len(order))
	for _, id := range order {
		out = append(out, *byResource[id])
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Phase != out[j].Phase {
			return out[i].Phase < out[j].Phase
		}
		return out[i].ResourceID < out[j].ResourceID
	})
	return out
}

// CapacityByPhase is the used/capacity/free/utilization summary for
// one physical phase bucket.
type CapacityByPhase struct {
	UsedM3      float64
	CapacityM3  float64
	FreeM3      float64
	Utilization float64
}

// CapacitySummary is the full by-phase capacity breakdown for a ship.
type CapacitySummary struct {
	Total   CapacityByPhase
	ByPhase map[Phase]CapacityByPhase
}

// ComputeCapacitySummary aggregates container capacity/usage by
// physical phase across every storage part on the ship.
func ComputeCapacitySummary(ps []parts.Part) CapacitySummary {
	byPhase := map[Phase]*CapacityByPhase{
		PhaseSolid:  {},
		PhaseLiquid: {},
		PhaseGas:    {},
	}

	for _, p := range ps {
		if p.Category != catalog.CategoryStorage {
			continue
		}
		phase := ClassifyResourcePhase(p.ResourceID, p.ResourceID, p.MassPerM3Kg)
		used := 0.0
		if p.Fill != nil {
			used = p.Fill.UsedM3
		}
		bucket := byPhase[phase]
		bucket.CapacityM3 += p.CapacityM3
		if used > p.CapacityM3 {
			used = p.CapacityM3
		}
		bucket.UsedM3 += used
	}

	var totalCap, totalUsed float64
	result := map[Phase]CapacityByPhase{}
	for phase, bucket := range byPhase {
		bucket.FreeM3 = bucket.CapacityM3 - bucket.UsedM3
		if bucket.FreeM3 < 0 {
			bucket.FreeM3 = 0
		}
		if bucket.CapacityM3 > 1e-9 {
			bucket.Utilization = bucket.UsedM3 / bucket.CapacityM3
		}
		result[phase] = *bucket
		totalCap += bucket.CapacityM3
		totalUsed += bucket.UsedM3
	}

	total := CapacityByPhase{UsedM3: totalUsed, CapacityM3: totalCap}
	total.FreeM3 = totalCap - totalUsed
	if total.FreeM3 < 0 {
		total.FreeM3 = 0
	}
	if totalCap > 1e-9 {
		total.Utilization = totalUsed / totalCap
	}

	return CapacitySummary{Total: total, ByPhase: result}
}
