package steps

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cucumber/godog"

	"github.com/coldharbor-systems/orbital-sim/internal/application/commands"
	"github.com/coldharbor-systems/orbital-sim/internal/application/mediator"
	"github.com/coldharbor-systems/orbital-sim/internal/application/wiring"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/catalog"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/parts"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/prospecting"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/transit"
)

type prospectingContext struct {
	stores   *wiring.Stores
	mediator mediator.Mediator
	result   prospecting.Result
}

func (p *prospectingContext) reset() error {
	stores, _, err := newWorld()
	if err != nil {
		return err
	}
	p.stores = stores
	p.mediator = wiring.BuildMediator(stores)
	p.result = prospecting.Result{}
	return nil
}

func (p *prospectingContext) aSurfaceSiteWithResources(siteLocationID string, table *godog.Table) error {
	site := prospecting.SurfaceSite{LocationID: siteLocationID, BodyID: "scenario-body"}
	for _, row := range table.Rows {
		fraction, err := strconv.ParseFloat(row.Cells[1].Value, 64)
		if err != nil {
			return err
		}
		site.Resources = append(site.Resources, prospecting.SiteResource{
			ResourceID:   row.Cells[0].Value,
			MassFraction: fraction,
		})
	}
	return p.stores.Sites.UpsertSite(site)
}

func (p *prospectingContext) aDockedShipAtCarryingARobonaut(shipID, locationID string) error {
	return p.stores.Transit.Save(transit.Ship{
		ID:         shipID,
		LocationID: locationID,
		Parts: []parts.Part{
			{ItemID: "robonaut.scenario", Category: catalog.CategoryRobonaut, MassKg: 450},
		},
	})
}

func (p *prospectingContext) siteShouldNotBeProspectedByOrg(siteLocationID, orgID string) error {
	prospected, err := p.stores.Prospect.IsProspected(orgID, siteLocationID)
	if err != nil {
		return err
	}
	if prospected {
		return fmt.Errorf("expected %s to not be prospected by %s yet", siteLocationID, orgID)
	}
	return nil
}

func (p *prospectingContext) orgProspectsWithShip(orgID, siteLocationID, shipID string) error {
	resp, err := p.mediator.Send(context.Background(), commands.ProspectCommand{
		OrgID: orgID, ShipID: shipID, SiteLocationID: siteLocationID, NowS: 0,
	})
	if err != nil {
		return err
	}
	p.result = resp.(commands.ProspectResult).Result
	return nil
}

func (p *prospectingContext) siteShouldBeProspectedByOrg(siteLocationID, orgID string) error {
	prospected, err := p.stores.Prospect.IsProspected(orgID, siteLocationID)
	if err != nil {
		return err
	}
	if !prospected {
		return fmt.Errorf("expected %s to be prospected by %s", siteLocationID, orgID)
	}
	return nil
}

func (p *prospectingContext) theRevealedResourcesForAtShouldBeInOrder(orgID, siteLocationID string, table *godog.Table) error {
	if len(p.result.Resources) != len(table.Rows) {
		return fmt.Errorf("expected %d revealed resources, got %d", len(table.Rows), len(p.result.Resources))
	}
	for i, row := range table.Rows {
		wantID := row.Cells[0].Value
		wantFraction, err := strconv.ParseFloat(row.Cells[1].Value, 64)
		if err != nil {
			return err
		}
		got := p.result.Resources[i]
		if got.ResourceID != wantID || got.MassFraction != wantFraction {
			return fmt.Errorf("row %d: expected {%s %v}, got {%s %v}", i, wantID, wantFraction, got.ResourceID, got.MassFraction)
		}
	}
	return nil
}

func InitializeProspectingScenario(ctx *godog.ScenarioContext) {
	pc := &prospectingContext{}

	ctx.Before(func(goCtx context.Context, sc *godog.Scenario) (context.Context, error) {
		return goCtx, pc.reset()
	})

	ctx.Step(`^a surface site "([^"]*)" with resources:$`, pc.aSurfaceSiteWithResources)
	ctx.Step(`^a docked ship "([^"]*)" at "([^"]*)" carrying a robonaut$`, pc.aDockedShipAtCarryingARobonaut)
	ctx.Step(`^"([^"]*)" should not be prospected by org "([^"]*)"$`, pc.siteShouldNotBeProspectedByOrg)
	ctx.Step(`^org "([^"]*)" prospects "([^"]*)" with ship "([^"]*)"$`, pc.orgProspectsWithShip)
	ctx.Step(`^"([^"]*)" should be prospected by org "([^"]*)"$`, pc.siteShouldBeProspectedByOrg)
	ctx.Step(`^the revealed resources for "([^"]*)" at "([^"]*)" should be, in order:$`, pc.theRevealedResourcesForAtShouldBeInOrder)
}
