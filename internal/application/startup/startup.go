// Package startup runs the ordered bring-up sequence a process hosting
// the simulation core must perform before it starts serving requests:
// open the store, migrate it, seed and expand the location graph,
// clean up development fixtures, load or persist the virtual clock,
// and regenerate the cached transfer matrix if the graph moved under
// it.
package startup

import (
	"fmt"
	"time"

	"github.com/coldharbor-systems/orbital-sim/internal/adapters/metrics"
	"github.com/coldharbor-systems/orbital-sim/internal/application/common"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/clock"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/locationgraph"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/parts"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/routing"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/transit"
	"github.com/coldharbor-systems/orbital-sim/pkg/utils"
)

// BaselineShipID is the well-known id of the shipyard starter ship
// ensured every startup, so a freshly provisioned deployment always
// has one dispatchable ship.
const BaselineShipID = "shipyard-01"

// BaselineShipyardLocationID is where the baseline ship is docked.
const BaselineShipyardLocationID = "LEO"

// ShipMaintenance is the narrow slice of the transit store the
// startup sequence needs beyond transit.Repository: bulk fixture
// cleanup that has no place in the domain's transactional port.
type ShipMaintenance interface {
	PurgeTestShips() (int, error)
}

// Graph bundles the location-graph and matrix stores the sequence
// seeds and regenerates. Locations and Source are typically the same
// concrete repository satisfying both narrower interfaces.
type Graph struct {
	Locations locationgraph.Repository
	Source    routing.GraphSource
	Matrix    routing.MatrixRepository
}

// ClockStore persists and restores the virtual clock's anchor triple.
type ClockStore interface {
	Save(clock.State) error
	Load() (clock.State, bool, error)
}

// Options bundles every collaborator the sequence needs. Ships and
// ShipMaintenance are typically the same concrete repository
// satisfying two narrower interfaces.
type Options struct {
	Migrate   func() error
	Graph     Graph
	Ships     transit.Repository
	ShipsMX   ShipMaintenance
	ClockSvc  *clock.SimClock
	ClockSt   ClockStore
	Logger    common.OperationLogger
	BaselineShip func() transit.Ship
}

// DefaultBaselineShip returns the starter ship installed when none
// exists: a ship docked at LEO with no parts and no fuel, a
// placeholder rather than anything flight-ready.
func DefaultBaselineShip() transit.Ship {
	return transit.Ship{
		ID:         BaselineShipID,
		LocationID: BaselineShipyardLocationID,
		FuelKg:     0,
		Parts:      []parts.Part{},
	}
}

// Run executes the bring-up sequence in the order External Interfaces
// mandates: migrate, seed the baseline graph, expand the Sol system,
// purge test ships, ensure the baseline shipyard ship, load or persist
// the clock, regenerate the matrix if the edge set moved under it.
// Each step logs its outcome under a shared correlation id so a
// deployment's startup can be traced as one unit.
func Run(opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = common.NewStdLogger(utils.GenerateContainerID("startup", "core"))
	}

	logger.Log("info", "opening store and running migrations", nil)
	if opts.Migrate != nil {
		if err := opts.Migrate(); err != nil {
			return fmt.Errorf("startup: migrate: %w", err)
		}
	}

	logger.Log("info", "seeding baseline location graph", nil)
	if err := locationgraph.SeedBaseline(opts.Graph.Locations); err != nil {
		return fmt.Errorf("startup: seed baseline graph: %w", err)
	}

	logger.Log("info", "expanding sol-system graph", nil)
	if err := locationgraph.ExpandSolSystem(opts.Graph.Locations); err != nil {
		return fmt.Errorf("startup: expand sol system: %w", err)
	}

	if opts.ShipsMX != nil {
		purged, err := opts.ShipsMX.PurgeTestShips()
		if err != nil {
			return fmt.Errorf("startup: purge test ships: %w", err)
		}
		logger.Log("info", "purged test ships", map[string]interface{}{"count": purged})
	}

	if err := ensureBaselineShip(opts); err != nil {
		return fmt.Errorf("startup: ensure baseline shipyard ship: %w", err)
	}

	if err := loadOrPersistClock(opts); err != nil {
		return fmt.Errorf("startup: load or persist clock: %w", err)
	}

	logger.Log("info", "regenerating transfer matrix if needed", nil)
	start := time.Now()
	if err := routing.RegenerateIfNeeded(opts.Graph.Source, opts.Graph.Matrix); err != nil {
		return fmt.Errorf("startup: regenerate matrix: %w", err)
	}
	if count, err := opts.Graph.Matrix.MatrixCount(); err == nil {
		metrics.RecordMatrixRegeneration(count, time.Since(start).Seconds())
	}

	logger.Log("info", "startup sequence complete", nil)
	return nil
}

// ensureBaselineShip installs the well-known starter ship if no ship
// with its id already exists, leaving any other ship untouched.
func ensureBaselineShip(opts Options) error {
	_, found, err := opts.Ships.Get(BaselineShipID)
	if err != nil {
		return err
	}
	if found {
		return nil
	}
	build := opts.BaselineShip
	if build == nil {
		build = DefaultBaselineShip
	}
	if opts.Logger != nil {
		opts.Logger.Log("info", "installing baseline shipyard ship", map[string]interface{}{"ship_id": BaselineShipID})
	}
	return opts.Ships.Save(build())
}

// loadOrPersistClock restores the clock's anchors from the store when
// a valid state is present, otherwise persists the clock's current
// (freshly constructed) state so future restarts have something to
// load. A malformed stored state is treated as absent, per the
// persisted-clock-format contract.
func loadOrPersistClock(opts Options) error {
	if opts.ClockSvc == nil || opts.ClockSt == nil {
		return nil
	}
	state, found, err := opts.ClockSt.Load()
	if err != nil || !found {
		return opts.ClockSt.Save(opts.ClockSvc.Export())
	}
	opts.ClockSvc.Import(state)
	return nil
}
