// Package catalog holds the process-wide, read-only id->record
// mappings for ship parts and resources, plus the category alias
// table used to canonicalize free-form category strings.
package catalog

import "strings"

// Category is one of the fixed canonical part/material categories.
type Category string

const (
	CategoryThruster         Category = "thruster"
	CategoryReactor          Category = "reactor"
	CategoryGenerator        Category = "generator"
	CategoryRobonaut         Category = "robonaut"
	CategoryConstructor      Category = "constructor"
	CategoryRefinery         Category = "refinery"
	CategoryRadiator         Category = "radiator"
	CategoryStorage          Category = "storage"
	CategoryFuel             Category = "fuel"
	CategoryRawMaterial      Category = "raw_material"
	CategoryFinishedMaterial Category = "finished_material"
	CategoryGeneric          Category = "generic"
)

var categories = map[Category]struct{}{
	CategoryThruster: {}, CategoryReactor: {}, CategoryGenerator: {},
	CategoryRobonaut: {}, CategoryConstructor: {}, CategoryRefinery: {},
	CategoryRadiator: {}, CategoryStorage: {}, CategoryFuel: {},
	CategoryRawMaterial: {}, CategoryFinishedMaterial: {}, CategoryGeneric: {},
}

var categoryAliases = map[string]Category{
	"thrusters": CategoryThruster, "engine": CategoryThruster, "engines": CategoryThruster,
	"reactors": CategoryReactor, "fission": CategoryReactor, "fusion": CategoryReactor,
	"generators": CategoryGenerator, "power_generator": CategoryGenerator, "power": CategoryGenerator,
	"robot": CategoryRobonaut, "robots": CategoryRobonaut, "drone": CategoryRobonaut,
	"drones": CategoryRobonaut, "robonauts": CategoryRobonaut,
	"refineries": CategoryRefinery,
	"constructors": CategoryConstructor, "builder": CategoryConstructor, "builders": CategoryConstructor,
	"surface_constructor": CategoryConstructor,
	"radiators":           CategoryRadiator, "cooler": CategoryRadiator, "cooling": CategoryRadiator,
	"tank": CategoryStorage, "tanks": CategoryStorage, "cargo": CategoryStorage,
	"wet_storage": CategoryStorage, "dry_storage": CategoryStorage,
	"fuels": CategoryFuel, "propellant": CategoryFuel, "propellants": CategoryFuel,
	"raw": CategoryRawMaterial, "raw_materials": CategoryRawMaterial, "ore": CategoryRawMaterial,
	"ores": CategoryRawMaterial, "feedstock": CategoryRawMaterial,
	"finished": CategoryFinishedMaterial, "finished_materials": CategoryFinishedMaterial,
	"alloy": CategoryFinishedMaterial, "alloys": CategoryFinishedMaterial,
	"metal": CategoryFinishedMaterial, "metals": CategoryFinishedMaterial,
}

// CanonicalCategory maps a free-form, case-insensitive category string
// through the alias table onto one of the fixed Category values.
// Unknown inputs map to CategoryGeneric.
func CanonicalCategory(raw string) Category {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return CategoryGeneric
	}
	if _, ok := categories[Category(key)]; ok {
		return Category(key)
	}
	if canon, ok := categoryAliases[key]; ok {
		return canon
	}
	return CategoryGeneric
}

// Record is a single catalog entry: the fields a Part may inherit
// from its catalog lookup. Unknown/extra fields pass through in Extras.
type Record struct {
	ID           string
	Name         string
	Category     Category
	MassKg       float64
	CapacityM3   float64
	MassPerM3Kg  float64
	ThrustKn     float64
	IspS         float64
	ThermalMw    float64
	PowerMw      float64
	ResourceID   string
	TechLevel    float64
	Extras       map[string]any
}

// Source is the external, read-only collaborator the core consumes:
// one lookup map per catalog kind. Catalog file loading itself is out
// of scope; the core only ever reads through this interface.
type Source interface {
	LoadThrusters() map[string]Record
	LoadReactors() map[string]Record
	LoadGenerators() map[string]Record
	LoadRadiators() map[string]Record
	LoadRefineries() map[string]Record
	LoadRobonauts() map[string]Record
	LoadConstructors() map[string]Record
	LoadStorage() map[string]Record
	LoadResources() map[string]Record
}

// Registry is a constructed, memoized view over a Source: loaded once
// at startup and handed to services as a plain value, replacing the
// cached module-level loader functions of the original system.
type Registry struct {
	thrusters    map[string]Record
	reactors     map[string]Record
	generators   map[string]Record
	radiators    map[string]Record
	refineries   map[string]Record
	robonauts    map[string]Record
	constructors map[string]Record
	storage      map[string]Record
	resources    map[string]Record
}

// NewRegistry loads every catalog kind from src exactly once.
func NewRegistry(src Source) *Registry {
	return &Registry{
		thrusters:    src.LoadThrusters(),
		reactors:     src.LoadReactors(),
		generators:   src.LoadGenerators(),
		radiators:    src.LoadRadiators(),
		refineries:   src.LoadRefineries(),
		robonauts:    src.LoadRobonauts(),
		constructors: src.LoadConstructors(),
		storage:      src.LoadStorage(),
		resources:    src.LoadResources(),
	}
}

func (r *Registry) Thruster(id string) (Record, bool)    { v, ok := r.thrusters[id]; return v, ok }
func (r *Registry) Reactor(id string) (Record, bool)     { v, ok := r.reactors[id]; return v, ok }
func (r *Registry) Generator(id string) (Record, bool)   { v, ok := r.generators[id]; return v, ok }
func (r *Registry) Radiator(id string) (Record, bool)    { v, ok := r.radiators[id]; return v, ok }
func (r *Registry) Refinery(id string) (Record, bool)    { v, ok := r.refineries[id]; return v, ok }
func (r *Registry) Robonaut(id string) (Record, bool)    { v, ok := r.robonauts[id]; return v, ok }
func (r *Registry) Constructor(id string) (Record, bool) { v, ok := r.constructors[id]; return v, ok }
func (r *Registry) Storage(id string) (Record, bool)     { v, ok := r.storage[id]; return v, ok }
func (r *Registry) Resource(id string) (Record, bool)    { v, ok := r.resources[id]; return v, ok }

// RecordByCategory looks a record up in the mapping matching the
// given canonical category, used by the normalizer when it already
// knows which kind of part it holds.
func (r *Registry) RecordByCategory(cat Category, id string) (Record, bool) {
	switch cat {
	case CategoryThruster:
		return r.Thruster(id)
	case CategoryReactor:
		return r.Reactor(id)
	case CategoryGenerator:
		return r.Generator(id)
	case CategoryRadiator:
		return r.Radiator(id)
	case CategoryRefinery:
		return r.Refinery(id)
	case CategoryRobonaut:
		return r.Robonaut(id)
	case CategoryConstructor:
		return r.Constructor(id)
	case CategoryStorage:
		return r.Storage(id)
	default:
		return Record{}, false
	}
}

// AllTechItems returns every catalogued part record across all
// ship-component kinds, tagged with its canonical category. Used by
// the boost service to enumerate boostable items.
func (r *Registry) AllTechItems() []Record {
	out := make([]Record, 0, len(r.thrusters)+len(r.reactors)+len(r.generators)+
		len(r.radiators)+len(r.refineries)+len(r.robonauts)+len(r.constructors)+len(r.storage))
	collect := func(cat Category, m map[string]Record) {
		for id, rec := range m {
			rec.ID = id
			rec.Category = cat
			out = append(out, rec)
		}
	}
	collect(CategoryThruster, r.thrusters)
	collect(CategoryReactor, r.reactors)
	collect(CategoryGenerator, r.generators)
	collect(CategoryRadiator, r.radiators)
	collect(CategoryRefinery, r.refineries)
	collect(CategoryRobonaut, r.robonauts)
	collect(CategoryConstructor, r.constructors)
	collect(CategoryStorage, r.storage)
	return out
}

// WaterResourceID is the fuel resource in the base catalog.
const WaterResourceID = "water"
