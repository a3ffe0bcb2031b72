// Package parts implements the ship-part normalizer: it turns
// heterogeneous raw part records into a canonical tagged-union shape
// with category-specific fields resolved from the catalog.
package parts

import "github.com/coldharbor-systems/orbital-sim/internal/domain/catalog"

// ContainerFill holds the explicit fill state of a storage part. It
// replaces the legacy duck-typed fill-alias keys with one typed
// substructure; persistence serializes it back to the legacy keys at
// the storage boundary for backward compatibility.
type ContainerFill struct {
	UsedM3       float64
	CargoMassKg  float64
	ResourceID   string
}

// Part is the canonical, normalized representation of a ship or
// inventory part. Category-specific numeric fields are zero when not
// applicable to Category; Extras carries any unrecognized raw fields
// through untouched.
type Part struct {
	ItemID      string
	Name        string
	Type        string
	Category    catalog.Category
	MassKg      float64
	CapacityM3  float64
	MassPerM3Kg float64
	ThrustKn    float64
	IspS        float64
	ThermalMw   float64
	PowerMw     float64
	ResourceID  string
	TechLevel   float64

	// ContainerUID is set for storage parts once normalized and is
	// stable across renormalization.
	ContainerUID string
	// Fill is non-nil only for storage parts.
	Fill *ContainerFill

	Extras map[string]any
}

// Raw is the pre-normalization shape: whatever a caller, test, or
// legacy payload supplies. Any field left zero-valued is filled in
// from the catalog during Normalize when possible.
type Raw struct {
	ItemID       string
	Name         string
	Type         string
	CategoryHint string
	MassKg       float64
	CapacityM3   float64
	MassPerM3Kg  float64
	ThrustKn     float64
	IspS         float64
	ThermalMw    float64
	PowerMw      float64
	ResourceID   string
	TechLevel    float64

	ContainerUID string
	Fill         *ContainerFill

	Extras map[string]any
}
