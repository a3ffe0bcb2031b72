package parts

import (
	"strings"

	"github.com/coldharbor-systems/orbital-sim/internal/domain/catalog"
)

// IDGen mints container UIDs. google/uuid.NewString satisfies this.
type IDGen func() string

var legacyVolumeKeys = []string{"cargo_used_m3", "used_m3", "fill_m3", "stored_m3", "current_m3"}
var legacyMassKeys = []string{"cargo_mass_kg", "contents_mass_kg", "stored_mass_kg", "current_mass_kg", "water_kg", "fuel_kg"}

func isStoragePart(r Raw) bool {
	if r.CapacityM3 > 0 {
		return true
	}
	t := strings.ToLower(strings.TrimSpace(r.Type))
	c := strings.ToLower(strings.TrimSpace(r.CategoryHint))
	return t == "storage" || t == "cargo" || c == "storage" || c == "cargo"
}

// Normalize resolves a raw part against the catalog registry,
// producing the canonical Part shape described in §4.C: resolved
// item_id, category-specific fields filled in from the catalog when
// missing, a stable container_uid for storage parts, and a
// canonicalized type/category.
//
// Normalize is idempotent: renormalizing an already-normalized Part
// (by round-tripping it through ToRaw) yields a structurally equal
// Part, since every field it would otherwise fill in is already
// present.
func Normalize(reg *catalog.Registry, r Raw, genID IDGen) Part {
	category := catalog.CanonicalCategory(firstNonEmpty(r.CategoryHint, r.Type))

	itemID := r.ItemID
	if itemID == "" {
		itemID = firstNonEmpty(r.Name, r.Type, "part")
	}

	rec, found := reg.RecordByCategory(category, itemID)

	p := Part{
		ItemID:      itemID,
		Name:        firstNonEmpty(r.Name, itemID),
		Type:        string(category),
		Category:    category,
		MassKg:      r.MassKg,
		CapacityM3:  r.CapacityM3,
		MassPerM3Kg: r.MassPerM3Kg,
		ThrustKn:    r.ThrustKn,
		IspS:        r.IspS,
		ThermalMw:   r.ThermalMw,
		PowerMw:     r.PowerMw,
		ResourceID:  r.ResourceID,
		TechLevel:   r.TechLevel,
		Extras:      copyExtras(r.Extras),
	}

	if found {
		if p.Name == itemID && rec.Name != "" {
			p.Name = rec.Name
		}
		fillIfZero(&p.MassKg, rec.MassKg)
		fillIfZero(&p.CapacityM3, rec.CapacityM3)
		fillIfZero(&p.MassPerM3Kg, rec.MassPerM3Kg)
		fillIfZero(&p.ThrustKn, rec.ThrustKn)
		fillIfZero(&p.IspS, rec.IspS)
		fillIfZero(&p.ThermalMw, rec.ThermalMw)
		fillIfZero(&p.PowerMw, rec.PowerMw)
		fillIfZero(&p.TechLevel, rec.TechLevel)
		if p.ResourceID == "" {
			p.ResourceID = rec.ResourceID
		}
	}

	if isStoragePart(r) {
		p.ContainerUID = r.ContainerUID
		if p.ContainerUID == "" && genID != nil {
			p.ContainerUID = genID()
		}
		p.Fill = r.Fill
	}

	return p
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func fillIfZero(dst *float64, src float64) {
	if *dst == 0 {
		*dst = src
	}
}

func copyExtras(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// ToRaw converts an already-normalized Part back into a Raw so it can
// be passed through Normalize again; used to verify idempotence.
func (p Part) ToRaw() Raw {
	return Raw{
		ItemID: p.ItemID, Name: p.Name, Type: p.Type, CategoryHint: string(p.Category),
		MassKg: p.MassKg, CapacityM3: p.CapacityM3, MassPerM3Kg: p.MassPerM3Kg,
		ThrustKn: p.ThrustKn, IspS: p.IspS, ThermalMw: p.ThermalMw, PowerMw: p.PowerMw,
		ResourceID: p.ResourceID, TechLevel: p.TechLevel,
		ContainerUID: p.ContainerUID, Fill: p.Fill, Extras: p.Extras,
	}
}
