package locationgraph

import "math"

const muSunKm3S2 = 1.32712440018e11

type planetaryBody struct {
	aKm      float64
	muKm3S2  float64
	radiusKm float64
	altKm    float64
}

var planets = map[string]planetaryBody{
	"earth":   {aKm: 149597870.7, muKm3S2: 398600.4418, radiusKm: 6378.137, altKm: 400.0},
	"mercury": {aKm: 57909227.0, muKm3S2: 22031.86855, radiusKm: 2439.7, altKm: 200.0},
	"venus":   {aKm: 108209475.0, muKm3S2: 324858.592, radiusKm: 6051.8, altKm: 250.0},
	"mars":    {aKm: 227943824.0, muKm3S2: 42828.375214, radiusKm: 3389.5, altKm: 250.0},
}

var nodeToBody = map[string]string{
	"LEO": "earth", "MERC_ORB": "mercury", "VEN_ORB": "venus", "LMO": "mars",
}

func polarXY(radiusKm, angleDeg float64) (x, y float64) {
	a := angleDeg * math.Pi / 180
	return radiusKm * math.Cos(a), radiusKm * math.Sin(a)
}

// ExpandSolSystem installs the Sun, Mercury, Venus, Earth, Luna
// (with its Lagrange points), and Mars (with Phobos/Deimos), and
// computes bidirectional interplanetary Hohmann edges between parking
// orbits plus the hand-picked hyperbolic "to Sun" edges. Idempotent
// via keyed upserts, grounded verbatim on the original system's
// built-in fallback celestial expansion (used here unconditionally,
// since external celestial-config loading is an out-of-scope
// collaborator).
func ExpandSolSystem(repo Repository) error {
	sunX, sunY := 0.0, 0.0

	mercuryX, mercuryY := polarXY(57909227.0, -16.0)
	venusX, venusY := polarXY(108209475.0, 11.0)
	earthX, earthY := polarXY(149597870.7, 0.0)
	marsX, marsY := polarXY(227943824.0, -7.0)

	moonOffX, moonOffY := polarXY(384400.0, 10.0)
	moonX := earthX + moonOffX
	moonY := earthY + moonOffY

	emDx, emDy := moonX-earthX, moonY-earthY
	emR := math.Max(1e-9, math.Hypot(emDx, emDy))
	emUx, emUy := emDx/emR, emDy/emR
	emTx, emTy := -emUy, emUx

	l1X, l1Y := earthX+emUx*326400.0, earthY+emUy*326400.0
	l2X, l2Y := earthX+emUx*448900.0, earthY+emUy*448900.0
	l3X, l3Y := earthX-emUx*381700.0, earthY-emUy*381700.0
	l4X := earthX + (0.5*emUx+(math.Sqrt(3.0)/2.0)*emTx)*emR
	l4Y := earthY + (0.5*emUy+(math.Sqrt(3.0)/2.0)*emTy)*emR
	l5X := earthX + (0.5*emUx-(math.Sqrt(3.0)/2.0)*emTx)*emR
	l5Y := earthY + (0.5*emUy-(math.Sqrt(3.0)/2.0)*emTy)*emR

	phobosOffX, phobosOffY := polarXY(9376.0, 28.0)
	deimosOffX, deimosOffY := polarXY(23463.2, -12.0)

	groups := []Location{
		{ID: "grp_sun", Name: "Sun", IsGroup: true, SortOrder: 1, X: sunX, Y: sunY},
		{ID: "grp_mercury", Name: "Mercury", ParentID: "grp_sun", IsGroup: true, SortOrder: 8, X: mercuryX, Y: mercuryY},
		{ID: "grp_venus", Name: "Venus", ParentID: "grp_sun", IsGroup: true, SortOrder: 9, X: venusX, Y: venusY},
		{ID: "grp_earth", Name: "Earth", ParentID: "grp_sun", IsGroup: true, SortOrder: 10, X: earthX, Y: earthY},
		{ID: "grp_earth_orbits", Name: "Orbits", ParentID: "grp_earth", IsGroup: true, SortOrder: 10, X: earthX, Y: earthY},
		{ID: "grp_em_lpoints", Name: "Earth–Luna Lagrange", ParentID: "grp_earth", IsGroup: true, SortOrder: 20, X: earthX, Y: earthY},
		{ID: "grp_moon", Name: "Luna", ParentID: "grp_earth", IsGroup: true, SortOrder: 20, X: moonX, Y: moonY},
		{ID: "grp_moon_orbits", Name: "Orbits", ParentID: "grp_moon", IsGroup: true, SortOrder: 10, X: moonX, Y: moonY},
		{ID: "grp_mars", Name: "Mars", ParentID: "grp_sun", IsGroup: true, SortOrder: 30, X: marsX, Y: marsY},
		{ID: "grp_mars_orbits", Name: "Orbits", ParentID: "grp_mars", IsGroup: true, SortOrder: 10, X: marsX, Y: marsY},
		{ID: "grp_mars_moons", Name: "Moons", ParentID: "grp_mars", IsGroup: true, SortOrder: 20, X: marsX, Y: marsY},
	}
	if err := repo.UpsertLocations(groups); err != nil {
		return err
	}

	leaves := []Location{
		{ID: "LEO", Name: "Low Earth Orbit", ParentID: "grp_earth_orbits", SortOrder: 10, X: earthX + 6778.137, Y: earthY},
		{ID: "HEO", Name: "High Earth Orbit", ParentID: "grp_earth_orbits", SortOrder: 20, X: earthX + 26600.0, Y: earthY},
		{ID: "GEO", Name: "Earth Geostationary", ParentID: "grp_earth_orbits", SortOrder: 30, X: earthX + 42164.137, Y: earthY},
		{ID: "L1", Name: "L1", ParentID: "grp_em_lpoints", SortOrder: 10, X: l1X, Y: l1Y},
		{ID: "L2", Name: "L2", ParentID: "grp_em_lpoints", SortOrder: 20, X: l2X, Y: l2Y},
		{ID: "L3", Name: "L3", ParentID: "grp_em_lpoints", SortOrder: 30, X: l3X, Y: l3Y},
		{ID: "L4", Name: "L4", ParentID: "grp_em_lpoints", SortOrder: 40, X: l4X, Y: l4Y},
		{ID: "L5", Name: "L5", ParentID: "grp_em_lpoints", SortOrder: 50, X: l5X, Y: l5Y},
		{ID: "LLO", Name: "Low Luna Orbit", ParentID: "grp_moon_orbits", SortOrder: 10, X: moonX + 1837.4, Y: moonY},
		{ID: "HLO", Name: "High Luna Orbit", ParentID: "grp_moon_orbits", SortOrder: 20, X: moonX + 4400.0, Y: moonY},
		{ID: "SUN", Name: "Sun", ParentID: "grp_sun", SortOrder: 1, X: sunX, Y: sunY},
		{ID: "MERC_ORB", Name: "Low Mercury Orbit", ParentID: "grp_mercury", SortOrder: 10, X: mercuryX + 2639.7, Y: mercuryY},
		{ID: "VEN_ORB", Name: "Low Venus Orbit", ParentID: "grp_venus", SortOrder: 10, X: venusX + 6301.8, Y: venusY},
		{ID: "LMO", Name: "Low Mars Orbit", ParentID: "grp_mars_orbits", SortOrder: 10, X: marsX + 3639.5, Y: marsY},
		{ID: "PHOBOS", Name: "Phobos", ParentID: "grp_mars_moons", SortOrder: 20, X: marsX + phobosOffX, Y: marsY + phobosOffY},
		{ID: "DEIMOS", Name: "Deimos", ParentID: "grp_mars_moons", SortOrder: 30, X: marsX + deimosOffX, Y: marsY + deimosOffY},
	}
	if err := repo.UpsertLocations(leaves); err != nil {
		return err
	}

	var edges []Edge
	nodes := []string{"LEO", "MERC_ORB", "VEN_ORB", "LMO"}
	for _, fromID := range nodes {
		for _, toID := range nodes {
			if fromID == toID {
				continue
			}
			fromBody := planets[nodeToBody[fromID]]
			toBody := planets[nodeToBody[toID]]
			dv, tof := HohmannInterplanetary(
				fromBody.aKm, toBody.aKm, muSunKm3S2,
				fromBody.muKm3S2, fromBody.radiusKm+fromBody.altKm,
				toBody.muKm3S2, toBody.radiusKm+toBody.altKm,
			)
			edges = append(edges, Edge{FromID: fromID, ToID: toID, DvMS: round2(dv), TofS: round1(tof)})
		}
	}

	marsMu := planets["mars"].muKm3S2
	rLmo := planets["mars"].radiusKm + 250.0
	rPhobos := 9376.0
	rDeimos := 23463.2

	lmoPhobosDv, lmoPhobosTof := HohmannOrbitChange(marsMu, rLmo, rPhobos)
	lmoDeimosDv, lmoDeimosTof := HohmannOrbitChange(marsMu, rLmo, rDeimos)
	phobosDeimosDv, phobosDeimosTof := HohmannOrbitChange(marsMu, rPhobos, rDeimos)

	edges = append(edges,
		Edge{FromID: "LMO", ToID: "PHOBOS", DvMS: round2(lmoPhobosDv), TofS: round1(lmoPhobosTof)},
		Edge{FromID: "PHOBOS", ToID: "LMO", DvMS: round2(lmoPhobosDv), TofS: round1(lmoPhobosTof)},
		Edge{FromID: "LMO", ToID: "DEIMOS", DvMS: round2(lmoDeimosDv), TofS: round1(lmoDeimosTof)},
		Edge{FromID: "DEIMOS", ToID: "LMO", DvMS: round2(lmoDeimosDv), TofS: round1(lmoDeimosTof)},
		Edge{FromID: "PHOBOS", ToID: "DEIMOS", DvMS: round2(phobosDeimosDv), TofS: round1(phobosDeimosTof)},
		Edge{FromID: "DEIMOS", ToID: "PHOBOS", DvMS: round2(phobosDeimosDv), TofS: round1(phobosDeimosTof)},
	)

	const day = 24.0 * 3600.0
	edges = append(edges,
		Edge{FromID: "LEO", ToID: "SUN", DvMS: 28000.0, TofS: 130.0 * day},
		Edge{FromID: "SUN", ToID: "LEO", DvMS: 28000.0, TofS: 130.0 * day},
		Edge{FromID: "MERC_ORB", ToID: "SUN", DvMS: 12000.0, TofS: 55.0 * day},
		Edge{FromID: "SUN", ToID: "MERC_ORB", DvMS: 12000.0, TofS: 55.0 * day},
		Edge{FromID: "VEN_ORB", ToID: "SUN", DvMS: 19000.0, TofS: 90.0 * day},
		Edge{FromID: "SUN", ToID: "VEN_ORB", DvMS: 19000.0, TofS: 90.0 * day},
		Edge{FromID: "LMO", ToID: "SUN", DvMS: 22000.0, TofS: 180.0 * day},
		Edge{FromID: "SUN", ToID: "LMO", DvMS: 22000.0, TofS: 180.0 * day},
	)

	return repo.UpsertEdges(edges)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round1(v float64) float64 { return math.Round(v*10) / 10 }
