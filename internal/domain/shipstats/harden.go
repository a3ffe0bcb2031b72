package shipstats

import "github.com/coldharbor-systems/orbital-sim/internal/domain/parts"

// HardenContainers performs the one-shot migration of pre-container
// inline fuel state onto explicit per-tank fill fields: for any water
// storage part with positive capacity and no explicit fill already
// recorded, the ship-level fuel_kg is distributed across those tanks
// proportionally to their capacity share. Returns the (possibly
// mutated) part list and whether anything changed, so callers know
// whether to persist.
func HardenContainers(ps []parts.Part, fuelKg float64) ([]parts.Part, bool) {
	out := make([]parts.Part, len(ps))
	copy(out, ps)

	var legacyIdx []int
	var legacyTotalCapacityKg float64
	changed := false

	for i, p := range out {
		if p.Category != "storage" {
			continue
		}
		if p.ResourceID != "water" || p.CapacityM3 <= 0 {
			continue
		}
		if p.Fill != nil {
			continue
		}
		density := p.MassPerM3Kg
		if density <= 0 {
			continue
		}
		legacyIdx = append(legacyIdx, i)
		legacyTotalCapacityKg += p.CapacityM3 * density
	}

	if len(legacyIdx) == 0 || legacyTotalCapacityKg <= 0 {
		return out, changed
	}

	ratio := fuelKg
	if ratio < 0 {
		ratio = 0
	}
	ratio = ratio / legacyTotalCapacityKg
	if ratio > 1 {
		ratio = 1
	}

	for _, i := range legacyIdx {
		p := &out[i]
		density := p.MassPerM3Kg
		usedM3 := p.CapacityM3 * ratio
		cargoMass := usedM3 * density
		p.Fill = &parts.ContainerFill{
			UsedM3:      usedM3,
			CargoMassKg: cargoMass,
			ResourceID:  "water",
		}
		changed = true
	}

	return out, changed
}
