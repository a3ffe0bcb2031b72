// Package locationgraph models the celestial location tree and the
// directed Δv/ToF transfer edges between non-group locations, and
// seeds the baseline Earth-Luna graph plus its Sol-system expansion.
package locationgraph

// Location is a node in the location tree: either a group (may not
// host ships or inventory) or a leaf (non-group, hostable).
type Location struct {
	ID        string
	Name      string
	ParentID  string // empty for roots
	IsGroup   bool
	SortOrder int
	X, Y      float64 // heliocentric plane, km
}

// Edge is a directed transfer edge between two non-group locations.
type Edge struct {
	FromID string
	ToID   string
	DvMS   float64
	TofS   float64
}

// Repository persists locations and edges with idempotent keyed
// upserts.
type Repository interface {
	CountLocations() (int, error)
	UpsertLocations(rows []Location) error
	UpsertEdges(rows []Edge) error
	AllLocations() ([]Location, error)
	AllEdges() ([]Edge, error)
}

// SeedBaseline installs the baseline Earth-Luna graph when the
// location table is empty: Earth orbits (LEO/HEO/GEO), the five
// Earth-Luna Lagrange points, and Luna orbits (LLO/HLO).
func SeedBaseline(repo Repository) error {
	count, err := repo.CountLocations()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	groups := []Location{
		{ID: "grp_earth", Name: "Earth", IsGroup: true, SortOrder: 10},
		{ID: "grp_earth_orbits", Name: "Orbits", ParentID: "grp_earth", IsGroup: true, SortOrder: 10},
		{ID: "grp_em_lpoints", Name: "Earth–Luna Lagrange", ParentID: "grp_earth", IsGroup: true, SortOrder: 20},
		{ID: "grp_moon", Name: "Luna", IsGroup: true, SortOrder: 20, X: 384400},
		{ID: "grp_moon_orbits", Name: "Orbits", ParentID: "grp_moon", IsGroup: true, SortOrder: 10, X: 384400},
	}

	leaves := []Location{
		{ID: "LEO", Name: "Low Earth Orbit", ParentID: "grp_earth_orbits", SortOrder: 10, X: 9000},
		{ID: "HEO", Name: "High Earth Orbit", ParentID: "grp_earth_orbits", SortOrder: 20, X: 20000},
		{ID: "GEO", Name: "Earth Geostationary", ParentID: "grp_earth_orbits", SortOrder: 30, X: 42164},
		{ID: "L1", Name: "L1", ParentID: "grp_em_lpoints", SortOrder: 10, X: 326000},
		{ID: "L2", Name: "L2", ParentID: "grp_em_lpoints", SortOrder: 20, X: 450000},
		{ID: "L3", Name: "L3", ParentID: "grp_em_lpoints", SortOrder: 30, X: -384400},
		{ID: "L4", Name: "L4", ParentID: "grp_em_lpoints", SortOrder: 40, X: 192200, Y: 332900},
		{ID: "L5", Name: "L5", ParentID: "grp_em_lpoints", SortOrder: 50, X: 192200, Y: -332900},
		{ID: "LLO", Name: "Low Luna Orbit", ParentID: "grp_moon_orbits", SortOrder: 10, X: 389500},
		{ID: "HLO", Name: "High Luna Orbit", ParentID: "grp_moon_orbits", SortOrder: 20, X: 396000},
	}

	if err := repo.UpsertLocations(append(groups, leaves...)); err != nil {
		return err
	}

	edges := []Edge{
		{FromID: "LEO", ToID: "HEO", DvMS: 900, TofS: 7200},
		{FromID: "HEO", ToID: "LEO", DvMS: 900, TofS: 7200},
		{FromID: "HEO", ToID: "GEO", DvMS: 1200, TofS: 14400},
		{FromID: "GEO", ToID: "HEO", DvMS: 700, TofS: 14400},
		{FromID: "LEO", ToID: "GEO", DvMS: 1800, TofS: 21600},
		{FromID: "GEO", ToID: "LEO", DvMS: 900, TofS: 21600},
		{FromID: "GEO", ToID: "L1", DvMS: 1200, TofS: 43200},
		{FromID: "L1", ToID: "GEO", DvMS: 500, TofS: 43200},
		{FromID: "L1", ToID: "L2", DvMS: 150, TofS: 21600},
		{FromID: "L2", ToID: "L1", DvMS: 150, TofS: 21600},
		{FromID: "L1", ToID: "L4", DvMS: 250, TofS: 86400},
		{FromID: "L4", ToID: "L1", DvMS: 250, TofS: 86400},
		{FromID: "L1", ToID: "L5", DvMS: 250, TofS: 86400},
		{FromID: "L5", ToID: "L1", DvMS: 250, TofS: 86400},
		{FromID: "L1", ToID: "L3", DvMS: 450, TofS: 129600},
		{FromID: "L3", ToID: "L1", DvMS: 450, TofS: 129600},
		{FromID: "L1", ToID: "LLO", DvMS: 900, TofS: 21600},
		{FromID: "LLO", ToID: "L1", DvMS: 900, TofS: 21600},
		{FromID: "LLO", ToID: "HLO", DvMS: 450, TofS: 7200},
		{FromID: "HLO", ToID: "LLO", DvMS: 450, TofS: 7200},
		{FromID: "L2", ToID: "HLO", DvMS: 900, TofS: 21600},
		{FromID: "HLO", ToID: "L2", DvMS: 900, TofS: 21600},
	}
	return repo.UpsertEdges(edges)
}
