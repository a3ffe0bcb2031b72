package steps

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/cucumber/godog"

	"github.com/coldharbor-systems/orbital-sim/internal/application/commands"
	"github.com/coldharbor-systems/orbital-sim/internal/application/mediator"
	"github.com/coldharbor-systems/orbital-sim/internal/application/queries"
	"github.com/coldharbor-systems/orbital-sim/internal/application/wiring"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/catalog"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/locationgraph"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/parts"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/transit"
)

type dispatchContext struct {
	stores   *wiring.Stores
	mediator mediator.Mediator
	ship     transit.Ship
	nowS     float64
}

func (d *dispatchContext) reset() error {
	stores, _, err := newWorld()
	if err != nil {
		return err
	}
	d.stores = stores
	d.mediator = wiring.BuildMediator(stores)
	d.ship = transit.Ship{}
	d.nowS = 0
	return nil
}

func (d *dispatchContext) theBaselineGraphIsAvailableForDispatch() error {
	return locationgraph.SeedBaseline(d.stores.Graph)
}

// aDockedShipAtWithDryMassIspAndFuel seeds a ship whose entire dry
// mass sits on its fuel tank's structural weight, so the scenario's
// stated dry mass and fuel load map directly onto Derive's inputs.
func (d *dispatchContext) aDockedShipAtWithDryMassIspAndFuel(shipID, locationID string, dryKg, ispS, fuelKg float64) error {
	ship := transit.Ship{
		ID:         shipID,
		LocationID: locationID,
		FuelKg:     fuelKg,
		Parts: []parts.Part{
			{
				ItemID:   "thruster.scenario",
				Category: catalog.CategoryThruster,
				IspS:     ispS,
				ThrustKn: 50,
			},
			{
				ItemID:      "tank.scenario",
				Category:    catalog.CategoryStorage,
				MassKg:      dryKg,
				CapacityM3:  fuelKg / 100,
				MassPerM3Kg: 100,
				ResourceID:  catalog.WaterResourceID,
				Fill: &parts.ContainerFill{
					CargoMassKg: fuelKg,
					UsedM3:      fuelKg / 100,
					ResourceID:  catalog.WaterResourceID,
				},
			},
		},
	}
	return d.stores.Transit.Save(ship)
}

func (d *dispatchContext) iDispatchTo(shipID, toID string) error {
	resp, err := d.mediator.Send(context.Background(), commands.DispatchCommand{
		ShipID: shipID, ToID: toID, NowS: d.nowS,
	})
	if err != nil {
		return err
	}
	d.ship = resp.(commands.DispatchResult).Ship
	return nil
}

func (d *dispatchContext) shipShouldBeInTransitWithAboutKgOfFuelRemaining(shipID, wantFuel string) error {
	if d.ship.Status() != transit.StatusInTransit {
		return fmt.Errorf("expected %s to be in transit, got %s", shipID, d.ship.Status())
	}
	want, err := strconv.ParseFloat(wantFuel, 64)
	if err != nil {
		return err
	}
	if math.Abs(d.ship.FuelKg-want) > 5 {
		return fmt.Errorf("expected fuel near %v kg, got %v kg", want, d.ship.FuelKg)
	}
	return nil
}

func (d *dispatchContext) secondsOfGameTimePass(seconds float64) error {
	d.nowS += seconds
	return nil
}

func (d *dispatchContext) arrivalsAreSettled() error {
	_, err := d.mediator.Send(context.Background(), commands.SettleArrivalsCommand{NowS: d.nowS})
	return err
}

func (d *dispatchContext) shipShouldBeDockedAt(shipID, locationID string) error {
	resp, err := d.mediator.Send(context.Background(), queries.GetShipQuery{ShipID: shipID})
	if err != nil {
		return err
	}
	res := resp.(queries.GetShipResult)
	if !res.Found {
		return fmt.Errorf("ship %s not found", shipID)
	}
	if res.Ship.Status() != transit.StatusDocked || res.Ship.LocationID != locationID {
		return fmt.Errorf("expected %s docked at %s, got status=%s location=%s",
			shipID, locationID, res.Ship.Status(), res.Ship.LocationID)
	}
	return nil
}

func InitializeDispatchScenario(ctx *godog.ScenarioContext) {
	dc := &dispatchContext{}

	ctx.Before(func(goCtx context.Context, sc *godog.Scenario) (context.Context, error) {
		return goCtx, dc.reset()
	})

	ctx.Step(`^the baseline location graph is available for dispatch$`, dc.theBaselineGraphIsAvailableForDispatch)
	ctx.Step(`^a docked ship "([^"]*)" at "([^"]*)" with dry mass (\d+) kg, isp (\d+) s, and (\d+) kg of fuel$`,
		dc.aDockedShipAtWithDryMassIspAndFuel)
	ctx.Step(`^I dispatch "([^"]*)" to "([^"]*)"$`, dc.iDispatchTo)
	ctx.Step(`^"([^"]*)" should be in transit with about (\d+) kg of fuel remaining$`,
		dc.shipShouldBeInTransitWithAboutKgOfFuelRemaining)
	ctx.Step(`^(\d+) seconds of game time pass$`, dc.secondsOfGameTimePass)
	ctx.Step(`^arrivals are settled$`, dc.arrivalsAreSettled)
	ctx.Step(`^"([^"]*)" should be docked at "([^"]*)"$`, dc.shipShouldBeDockedAt)
}
