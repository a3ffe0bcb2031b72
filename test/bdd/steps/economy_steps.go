package steps

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/cucumber/godog"

	"github.com/coldharbor-systems/orbital-sim/internal/application/mediator"
	"github.com/coldharbor-systems/orbital-sim/internal/application/queries"
	"github.com/coldharbor-systems/orbital-sim/internal/application/wiring"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/economy"
)

const testOrgID = "ORG-1"

type economyContext struct {
	stores   *wiring.Stores
	mediator mediator.Mediator
	org      economy.Organization
}

func (e *economyContext) reset() error {
	stores, _, err := newWorld()
	if err != nil {
		return err
	}
	e.stores = stores
	e.mediator = wiring.BuildMediator(stores)
	e.org = economy.Organization{}
	return nil
}

func (e *economyContext) anOrganizationWithBalanceAndResearchTeamLastSettledAtTime(balance string, teams, lastSettled int) error {
	bal, err := strconv.ParseFloat(balance, 64)
	if err != nil {
		return err
	}
	return e.stores.Economy.Save(economy.Organization{
		ID:             testOrgID,
		BalanceUSD:     bal,
		ResearchTeams:  teams,
		LastSettledAtS: float64(lastSettled),
	})
}

func (e *economyContext) theOrganizationIsSettledOneGameMonthLater() error {
	resp, err := e.mediator.Send(context.Background(), queries.GetOrgQuery{OrgID: testOrgID, NowS: economy.GameMonthSeconds})
	if err != nil {
		return err
	}
	e.org = resp.(queries.GetOrgResult).Org
	return nil
}

func (e *economyContext) theOrganizationBalanceShouldBe(want string) error {
	wantF, err := strconv.ParseFloat(want, 64)
	if err != nil {
		return err
	}
	if e.org.BalanceUSD != wantF {
		return fmt.Errorf("expected balance %v, got %v", wantF, e.org.BalanceUSD)
	}
	return nil
}

func (e *economyContext) theOrganizationResearchPointsShouldBeAbout(want string) error {
	wantF, err := strconv.ParseFloat(want, 64)
	if err != nil {
		return err
	}
	if math.Abs(e.org.ResearchPoints-wantF) > 0.01 {
		return fmt.Errorf("expected research points near %v, got %v", wantF, e.org.ResearchPoints)
	}
	return nil
}

func InitializeEconomyScenario(ctx *godog.ScenarioContext) {
	ec := &economyContext{}

	ctx.Before(func(goCtx context.Context, sc *godog.Scenario) (context.Context, error) {
		return goCtx, ec.reset()
	})

	ctx.Step(`^an organization with balance (\d+) and (\d+) research team, last settled at time (\d+)$`,
		ec.anOrganizationWithBalanceAndResearchTeamLastSettledAtTime)
	ctx.Step(`^the organization is settled one game month later$`, ec.theOrganizationIsSettledOneGameMonthLater)
	ctx.Step(`^the organization balance should be (\d+)$`, ec.theOrganizationBalanceShouldBe)
	ctx.Step(`^the organization research points should be about ([0-9.]+)$`, ec.theOrganizationResearchPointsShouldBeAbout)
}
