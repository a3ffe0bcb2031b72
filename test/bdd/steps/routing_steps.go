package steps

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"github.com/coldharbor-systems/orbital-sim/internal/application/mediator"
	"github.com/coldharbor-systems/orbital-sim/internal/application/queries"
	"github.com/coldharbor-systems/orbital-sim/internal/application/wiring"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/locationgraph"
)

type routingContext struct {
	stores   *wiring.Stores
	mediator mediator.Mediator
	result   queries.RouteResult
}

func (r *routingContext) reset() error {
	stores, _, err := newWorld()
	if err != nil {
		return err
	}
	r.stores = stores
	r.mediator = wiring.BuildMediator(stores)
	r.result = queries.RouteResult{}
	return nil
}

func (r *routingContext) theBaselineLocationGraphIsSeeded() error {
	return locationgraph.SeedBaseline(r.stores.Graph)
}

func (r *routingContext) iRequestTheRouteFromTo(fromID, toID string) error {
	resp, err := r.mediator.Send(context.Background(), queries.RouteQuery{FromID: fromID, ToID: toID})
	if err != nil {
		return err
	}
	r.result = resp.(queries.RouteResult)
	return nil
}

func (r *routingContext) theRouteShouldBeFound() error {
	if !r.result.Found {
		return fmt.Errorf("expected a route to be found")
	}
	return nil
}

func (r *routingContext) theRouteDeltaVShouldBe(want string) error {
	wantF, _ := strconv.ParseFloat(want, 64)
	if r.result.DvMS != wantF {
		return fmt.Errorf("expected delta-v %v, got %v", wantF, r.result.DvMS)
	}
	return nil
}

func (r *routingContext) theRouteTimeOfFlightShouldBe(want string) error {
	wantF, _ := strconv.ParseFloat(want, 64)
	if r.result.TofS != wantF {
		return fmt.Errorf("expected time of flight %v, got %v", wantF, r.result.TofS)
	}
	return nil
}

func (r *routingContext) theRoutePathShouldBe(want string) error {
	got := strings.Join(r.result.Path, ",")
	if got != want {
		return fmt.Errorf("expected path %q, got %q", want, got)
	}
	return nil
}

func InitializeRoutingScenario(ctx *godog.ScenarioContext) {
	rc := &routingContext{}

	ctx.Before(func(goCtx context.Context, sc *godog.Scenario) (context.Context, error) {
		return goCtx, rc.reset()
	})

	ctx.Step(`^the baseline location graph is seeded$`, rc.theBaselineLocationGraphIsSeeded)
	ctx.Step(`^I request the route from "([^"]*)" to "([^"]*)"$`, rc.iRequestTheRouteFromTo)
	ctx.Step(`^the route should be found$`, rc.theRouteShouldBeFound)
	ctx.Step(`^the route delta-v should be (\d+)$`, rc.theRouteDeltaVShouldBe)
	ctx.Step(`^the route time of flight should be (\d+)$`, rc.theRouteTimeOfFlightShouldBe)
	ctx.Step(`^the route path should be "([^"]*)"$`, rc.theRoutePathShouldBe)
}
