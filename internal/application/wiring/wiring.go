// Package wiring assembles a mediator with every command and query
// handler registered against a concrete set of GORM-backed stores, so
// the daemon and the operator CLI build the identical dispatch surface
// from the identical database connection instead of duplicating the
// registration list.
package wiring

import (
	"reflect"

	"gorm.io/gorm"

	"github.com/coldharbor-systems/orbital-sim/internal/adapters/persistence"
	"github.com/coldharbor-systems/orbital-sim/internal/application/commands"
	"github.com/coldharbor-systems/orbital-sim/internal/application/mediator"
	"github.com/coldharbor-systems/orbital-sim/internal/application/queries"
	"github.com/coldharbor-systems/orbital-sim/internal/application/stats"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/catalog"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/clock"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/inventory"
)

// Stores holds every repository the core's handlers are built from.
type Stores struct {
	DB         *gorm.DB
	Transit    *persistence.GormTransitRepository
	Economy    *persistence.GormEconomyRepository
	Inventory  *persistence.GormInventoryRepository
	Graph      *persistence.GormLocationGraphRepository
	Matrix     *persistence.GormMatrixRepository
	Prospect   *persistence.GormProspectingRepository
	Sites      *persistence.GormSiteRepository
	ShipLookup *persistence.GormShipLookup
	Clock      *clock.SimClock
	ClockStore *persistence.GormClockStore
	Catalog    *catalog.Registry
}

// NewStores builds every repository adapter over one database handle.
func NewStores(db *gorm.DB, simClock *clock.SimClock) *Stores {
	return &Stores{
		DB:         db,
		Transit:    persistence.NewGormTransitRepository(db),
		Economy:    persistence.NewGormEconomyRepository(db),
		Inventory:  persistence.NewGormInventoryRepository(db),
		Graph:      persistence.NewGormLocationGraphRepository(db),
		Matrix:     persistence.NewGormMatrixRepository(db),
		Prospect:   persistence.NewGormProspectingRepository(db),
		Sites:      persistence.NewGormSiteRepository(db),
		ShipLookup: persistence.NewGormShipLookup(db),
		Clock:      simClock,
		ClockStore: persistence.NewGormClockStore(db),
		Catalog:    catalog.NewRegistry(catalog.StaticSource{}),
	}
}

// InventoryService exposes the inventory domain service over the
// wired repository, using the shared sim clock for UpdatedAtS stamps.
func (s *Stores) InventoryService() *inventory.Service {
	return inventory.NewService(s.Inventory, s.Clock.Now)
}

// BuildMediator registers every command and query handler this core
// exposes, matching the wire surface one-to-one with its component
// APIs: stats_preview, dispatch, settle, boost, prospect, unlock_tech,
// inventory_at, route.
func BuildMediator(s *Stores) mediator.Mediator {
	m := mediator.New()
	invSvc := s.InventoryService()
	routes := commands.CachedRouteLookup{Graph: s.Graph, Matrix: s.Matrix}

	dispatchHandler := commands.NewDispatchHandler(s.Transit, routes)
	settleArrivalsHandler := commands.NewSettleArrivalsHandler(s.Transit)
	economyHandler := commands.NewEconomyHandler(s.Economy)
	boostHandler := commands.NewBoostHandler(s.Economy, commands.NewInventoryDelivery(invSvc))
	prospectHandler := commands.NewProspectHandler(s.ShipLookup, s.Sites, s.Prospect)
	clockHandler := commands.NewClockHandler(s.Clock, s.ClockStore)

	routeHandler := queries.NewRouteHandler(s.Graph, s.Matrix)
	inventoryAtHandler := queries.NewInventoryAtHandler(s.Inventory)
	getOrgHandler := queries.NewGetOrgHandler(s.Economy)
	getShipHandler := queries.NewGetShipHandler(s.Transit)
	previewHandler := stats.NewPreviewHandler()
	catalogHandler := queries.NewCatalogHandler(s.Catalog, s.Economy)

	register(m, commands.DispatchCommand{}, dispatchHandler)
	register(m, commands.SettleArrivalsCommand{}, settleArrivalsHandler)
	register(m, commands.HireTeamCommand{}, economyHandler)
	register(m, commands.FireTeamCommand{}, economyHandler)
	register(m, commands.UnlockTechCommand{}, economyHandler)
	register(m, commands.BoostCommand{}, boostHandler)
	register(m, commands.ProspectCommand{}, prospectHandler)
	register(m, commands.SetPausedCommand{}, clockHandler)
	register(m, commands.ResetClockCommand{}, clockHandler)

	register(m, queries.RouteQuery{}, routeHandler)
	register(m, queries.InventoryAtQuery{}, inventoryAtHandler)
	register(m, queries.GetOrgQuery{}, getOrgHandler)
	register(m, stats.PreviewQuery{}, previewHandler)
	register(m, queries.LookupRecordQuery{}, catalogHandler)
	register(m, queries.BoostableItemsQuery{}, catalogHandler)
	register(m, queries.GetShipQuery{}, getShipHandler)

	return m
}

func register(m mediator.Mediator, zero mediator.Request, handler mediator.RequestHandler) {
	if err := m.Register(reflect.TypeOf(zero), handler); err != nil {
		panic(err)
	}
}
