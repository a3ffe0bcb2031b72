// Package boost implements LEO delivery of catalog parts into an
// organization's inventory: items gated by tech level and unlocked
// tech node, at a cost quoted by mass alone, paid out of the
// organization's ledger balance.
package boost

import "github.com/coldharbor-systems/orbital-sim/internal/domain/catalog"

const (
	LeoBoostBaseCostUSD  = 100_000_000.0
	LeoBoostCostPerKgUSD = 5_000.0
)

// boostableTechLevels is the literal set of tech levels eligible for
// LEO delivery. Kept as an int-keyed set rather than mirroring the
// half-level float comparison the ledger source used — see DESIGN.md's
// Open Question decision on this point.
var boostableTechLevels = map[int]struct{}{1: {}, 2: {}}

// IsBoostable reports whether a catalog record's tech level qualifies
// for LEO delivery, independent of any organization's unlocked techs.
func IsBoostable(rec catalog.Record) bool {
	_, ok := boostableTechLevels[int(rec.TechLevel)]
	return ok
}

// TechNodeID derives the tech-tree node id implied by a catalog
// record's category and id: the category prefix, plus the record's
// own id as the branch suffix. Refineries take the same
// "refinery:<id>" form, one node per refinery record.
func TechNodeID(rec catalog.Record) string {
	if rec.Category == catalog.CategoryRefinery {
		return string(catalog.CategoryRefinery) + ":" + rec.ID
	}
	return string(rec.Category) + ":" + rec.ID
}

// UnlockedChecker reports whether an organization has unlocked a tech
// node, narrowed from economy.Organization.HasUnlocked.
type UnlockedChecker interface {
	HasUnlocked(techID string) bool
}

// isWaterResource reports whether rec is the water resource record,
// the one resource eligible for LEO delivery alongside tech parts.
func isWaterResource(rec catalog.Record) bool {
	return rec.ResourceID == catalog.WaterResourceID || rec.ID == catalog.WaterResourceID
}

// BoostableForOrg reports whether rec is boostable for org: its tech
// level must qualify per IsBoostable AND its implied tech-tree node
// must already be unlocked, except the water resource, which is
// always boostable regardless of tech.
func BoostableForOrg(rec catalog.Record, org UnlockedChecker) bool {
	if isWaterResource(rec) {
		return true
	}
	if !IsBoostable(rec) {
		return false
	}
	return org.HasUnlocked(TechNodeID(rec))
}

// BoostableItems filters reg's full tech-item listing down to the
// ones eligible for LEO delivery for org.
func BoostableItems(reg *catalog.Registry, org UnlockedChecker) []catalog.Record {
	all := reg.AllTechItems()
	out := make([]catalog.Record, 0, len(all))
	for _, rec := range all {
		if BoostableForOrg(rec, org) {
			out = append(out, rec)
		}
	}
	return out
}

// CalculateCost quotes the USD cost of delivering massKg of material
// to LEO: a flat base charge plus a per-kilogram surcharge.
func CalculateCost(massKg float64) float64 {
	if massKg < 0 {
		massKg = 0
	}
	return LeoBoostBaseCostUSD + massKg*LeoBoostCostPerKgUSD
}
