package prospecting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coldharbor-systems/orbital-sim/internal/domain/prospecting"
)

type fakeShips struct {
	locationByShip map[string]string
	robonautByShip map[string]bool
}

func (f fakeShips) LocationOf(shipID string) (string, bool, error) {
	loc, ok := f.locationByShip[shipID]
	return loc, ok, nil
}

func (f fakeShips) HasRobonaut(shipID string) (bool, error) {
	return f.robonautByShip[shipID], nil
}

type fakeSites struct {
	sites map[string]prospecting.SurfaceSite
}

func (f fakeSites) SiteAt(locationID string) (prospecting.SurfaceSite, bool, error) {
	s, ok := f.sites[locationID]
	return s, ok, nil
}

type memRepo struct {
	results []prospecting.Result
}

func (r *memRepo) IsProspected(orgID, locationID string) (bool, error) {
	for _, res := range r.results {
		if res.OrgID == orgID && res.SiteLocationID == locationID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memRepo) Record(res prospecting.Result) error {
	r.results = append(r.results, res)
	return nil
}

func (r *memRepo) ListByOrg(orgID string) ([]prospecting.Result, error) {
	var out []prospecting.Result
	for _, res := range r.results {
		if res.OrgID == orgID {
			out = append(out, res)
		}
	}
	return out, nil
}

func TestProspectSiteRevealsResources(t *testing.T) {
	// Arrange
	ships := fakeShips{
		locationByShip: map[string]string{"ship-1": "PHOBOS"},
		robonautByShip: map[string]bool{"ship-1": true},
	}
	sites := fakeSites{sites: map[string]prospecting.SurfaceSite{
		"PHOBOS": {LocationID: "PHOBOS", BodyID: "mars", Resources: []prospecting.SiteResource{
			{ResourceID: "iron_oxide", MassFraction: 0.4},
		}},
	}}
	repo := &memRepo{}

	// Act
	result, err := prospecting.ProspectSite(ships, sites, repo, "org-1", "ship-1", "PHOBOS", 100)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []prospecting.SiteResource{{ResourceID: "iron_oxide", MassFraction: 0.4}}, result.Resources)
	assert.Len(t, repo.results, 1)
}

func TestProspectSiteFailsWhenShipElsewhere(t *testing.T) {
	// Arrange
	ships := fakeShips{locationByShip: map[string]string{"ship-1": "LEO"}}
	sites := fakeSites{sites: map[string]prospecting.SurfaceSite{"PHOBOS": {LocationID: "PHOBOS"}}}
	repo := &memRepo{}

	// Act
	_, err := prospecting.ProspectSite(ships, sites, repo, "org-1", "ship-1", "PHOBOS", 0)

	// Assert
	assert.IsType(t, &prospecting.ErrShipNotAtSite{}, err)
}

func TestProspectSiteFailsWithoutRobonaut(t *testing.T) {
	// Arrange
	ships := fakeShips{
		locationByShip: map[string]string{"ship-1": "PHOBOS"},
		robonautByShip: map[string]bool{"ship-1": false},
	}
	sites := fakeSites{sites: map[string]prospecting.SurfaceSite{"PHOBOS": {LocationID: "PHOBOS"}}}
	repo := &memRepo{}

	// Act
	_, err := prospecting.ProspectSite(ships, sites, repo, "org-1", "ship-1", "PHOBOS", 0)

	// Assert
	assert.IsType(t, &prospecting.ErrNoRobonaut{}, err)
}

func TestProspectSiteFailsWhenAlreadyProspectedByOrg(t *testing.T) {
	// Arrange
	ships := fakeShips{
		locationByShip: map[string]string{"ship-1": "PHOBOS"},
		robonautByShip: map[string]bool{"ship-1": true},
	}
	sites := fakeSites{sites: map[string]prospecting.SurfaceSite{"PHOBOS": {LocationID: "PHOBOS"}}}
	repo := &memRepo{results: []prospecting.Result{{OrgID: "org-1", SiteLocationID: "PHOBOS"}}}

	// Act
	_, err := prospecting.ProspectSite(ships, sites, repo, "org-1", "ship-1", "PHOBOS", 0)

	// Assert
	assert.IsType(t, &prospecting.ErrAlreadyProspected{}, err)
}

func TestProspectSiteFailsForNonSurfaceLocation(t *testing.T) {
	// Arrange
	ships := fakeShips{
		locationByShip: map[string]string{"ship-1": "LEO"},
		robonautByShip: map[string]bool{"ship-1": true},
	}
	sites := fakeSites{sites: map[string]prospecting.SurfaceSite{}}
	repo := &memRepo{}

	// Act
	_, err := prospecting.ProspectSite(ships, sites, repo, "org-1", "ship-1", "LEO", 0)

	// Assert
	assert.IsType(t, &prospecting.ErrNotASurfaceSite{}, err)
}
