package transit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coldharbor-systems/orbital-sim/internal/domain/catalog"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/parts"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/transit"
)

type fakeRoutes struct {
	dvMS, tofS float64
	path       []string
	found      bool
}

func (f fakeRoutes) Lookup(fromID, toID string) (float64, float64, []string, bool) {
	if !f.found {
		return 0, 0, nil, false
	}
	return f.dvMS, f.tofS, f.path, true
}

type memRepo struct {
	ships map[string]transit.Ship
}

func newMemRepo() *memRepo { return &memRepo{ships: map[string]transit.Ship{}} }

func (r *memRepo) Get(id string) (transit.Ship, bool, error) {
	s, ok := r.ships[id]
	return s, ok, nil
}

func (r *memRepo) Save(s transit.Ship) error {
	r.ships[s.ID] = s
	return nil
}

func (r *memRepo) SettleArrivals(now float64) ([]string, error) {
	var promoted []string
	for id, s := range r.ships {
		if s.Status() != transit.StatusInTransit {
			continue
		}
		if s.ArrivesAtS > now {
			continue
		}
		s.LocationID = s.ToLocationID
		s.FromLocationID = ""
		s.ToLocationID = ""
		s.DepartedAtS = 0
		s.ArrivesAtS = 0
		s.TransferPath = nil
		r.ships[id] = s
		promoted = append(promoted, id)
	}
	return promoted, nil
}

func testShip(fuelKg float64) transit.Ship {
	return transit.Ship{
		ID:         "ship-1",
		LocationID: "LEO",
		FuelKg:     fuelKg,
		Parts: []parts.Part{
			{ItemID: "hull", Category: catalog.CategoryGeneric, MassKg: 500},
			{ItemID: "thruster", Category: catalog.CategoryThruster, MassKg: 50, ThrustKn: 20, IspS: 320},
			{
				ItemID: "tank", Category: catalog.CategoryStorage, ResourceID: catalog.WaterResourceID,
				CapacityM3: 10, MassPerM3Kg: 1000, MassKg: 20,
				Fill: &parts.ContainerFill{UsedM3: fuelKg / 1000, CargoMassKg: fuelKg, ResourceID: catalog.WaterResourceID},
			},
		},
	}
}

func TestDispatchFromDockedMovesToInTransit(t *testing.T) {
	// Arrange
	ship := testShip(2000)
	routes := fakeRoutes{found: true, dvMS: 100, tofS: 3600, path: []string{"LEO", "HEO"}}

	// Act
	moved, err := transit.Dispatch(ship, "HEO", routes, 1000)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, transit.StatusInTransit, moved.Status())
	assert.Equal(t, "LEO", moved.FromLocationID)
	assert.Equal(t, "HEO", moved.ToLocationID)
	assert.Equal(t, 1000.0, moved.DepartedAtS)
	assert.Equal(t, 1000.0+3600.0, moved.ArrivesAtS)
	assert.Less(t, moved.FuelKg, ship.FuelKg)
}

func TestDispatchFailsWhenAlreadyInTransit(t *testing.T) {
	// Arrange
	ship := testShip(2000)
	ship.LocationID = ""
	ship.ToLocationID = "HEO"
	routes := fakeRoutes{found: true, dvMS: 100, tofS: 3600, path: []string{"LEO", "HEO"}}

	// Act
	_, err := transit.Dispatch(ship, "GEO", routes, 0)

	// Assert
	assert.Equal(t, transit.ErrNotDocked, err)
}

func TestDispatchFailsWhenNoRouteCached(t *testing.T) {
	// Arrange
	ship := testShip(2000)
	routes := fakeRoutes{found: false}

	// Act
	_, err := transit.Dispatch(ship, "GEO", routes, 0)

	// Assert
	assert.Equal(t, transit.ErrNoRoute, err)
}

func TestDispatchFailsWhenFuelInsufficient(t *testing.T) {
	// Arrange: tiny tank, huge maneuver
	ship := testShip(1)
	routes := fakeRoutes{found: true, dvMS: 50000, tofS: 3600, path: []string{"LEO", "HEO"}}

	// Act
	_, err := transit.Dispatch(ship, "HEO", routes, 0)

	// Assert
	assert.Equal(t, transit.ErrInsufficientFuel, err)
}

func TestDispatchFailsForSameLocation(t *testing.T) {
	// Arrange
	ship := testShip(2000)
	routes := fakeRoutes{found: true, dvMS: 0, tofS: 0, path: []string{"LEO"}}

	// Act
	_, err := transit.Dispatch(ship, "LEO", routes, 0)

	// Assert
	assert.Equal(t, transit.ErrSameLocation, err)
}

func TestSettleArrivalsPromotesOnlyDueShips(t *testing.T) {
	// Arrange
	repo := newMemRepo()
	due := transit.Ship{ID: "due", ToLocationID: "HEO", FromLocationID: "LEO", ArrivesAtS: 100, TransferPath: []string{"LEO", "HEO"}}
	notYet := transit.Ship{ID: "not-yet", ToLocationID: "GEO", FromLocationID: "LEO", ArrivesAtS: 9999, TransferPath: []string{"LEO", "GEO"}}
	require.NoError(t, repo.Save(due))
	require.NoError(t, repo.Save(notYet))

	// Act
	promoted, err := transit.SettleArrivals(repo, 100)

	// Assert
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"due"}, promoted)
	settled, _, _ := repo.Get("due")
	assert.Equal(t, transit.StatusDocked, settled.Status())
	assert.Equal(t, "HEO", settled.LocationID)
	stillTransit, _, _ := repo.Get("not-yet")
	assert.Equal(t, transit.StatusInTransit, stillTransit.Status())
}

func TestSettleArrivalsIsIdempotent(t *testing.T) {
	// Arrange
	repo := newMemRepo()
	require.NoError(t, repo.Save(transit.Ship{ID: "due", ToLocationID: "HEO", ArrivesAtS: 100}))

	// Act
	first, err := transit.SettleArrivals(repo, 100)
	require.NoError(t, err)
	second, err := transit.SettleArrivals(repo, 100)

	// Assert
	require.NoError(t, err)
	assert.Len(t, first, 1)
	assert.Len(t, second, 0)
}
