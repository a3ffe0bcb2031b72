package steps

import (
	"fmt"
	"strconv"

	"github.com/cucumber/godog"

	"github.com/coldharbor-systems/orbital-sim/internal/domain/boost"
)

type boostCostContext struct {
	cost float64
}

func (b *boostCostContext) iCalculateTheBoostCostForKg(massKg string) error {
	mass, err := strconv.ParseFloat(massKg, 64)
	if err != nil {
		return err
	}
	b.cost = boost.CalculateCost(mass)
	return nil
}

func (b *boostCostContext) theBoostCostShouldBe(want string) error {
	wantF, err := strconv.ParseFloat(want, 64)
	if err != nil {
		return err
	}
	if b.cost != wantF {
		return fmt.Errorf("expected boost cost %v, got %v", wantF, b.cost)
	}
	return nil
}

func InitializeBoostCostScenario(ctx *godog.ScenarioContext) {
	bc := &boostCostContext{}

	ctx.Step(`^I calculate the boost cost for (\d+) kg$`, bc.iCalculateTheBoostCostForKg)
	ctx.Step(`^the boost cost should be (\d+)$`, bc.theBoostCostShouldBe)
}
