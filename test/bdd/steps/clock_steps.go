package steps

import (
	"context"
	"fmt"
	"time"

	"github.com/cucumber/godog"

	"github.com/coldharbor-systems/orbital-sim/internal/application/commands"
	"github.com/coldharbor-systems/orbital-sim/internal/application/mediator"
	"github.com/coldharbor-systems/orbital-sim/internal/application/wiring"
)

type clockContext struct {
	stores   *wiring.Stores
	mediator mediator.Mediator
	real     *fakeRealTime
	readings map[string]float64
}

func (c *clockContext) reset() error {
	stores, real, err := newWorld()
	if err != nil {
		return err
	}
	c.stores = stores
	c.real = real
	c.mediator = wiring.BuildMediator(stores)
	c.readings = make(map[string]float64)
	return nil
}

func (c *clockContext) aFreshVirtualClock() error {
	return nil
}

func (c *clockContext) iPauseTheClock() error {
	_, err := c.mediator.Send(context.Background(), commands.SetPausedCommand{Paused: true})
	return err
}

func (c *clockContext) iResumeTheClock() error {
	_, err := c.mediator.Send(context.Background(), commands.SetPausedCommand{Paused: false})
	return err
}

func (c *clockContext) iReadTheClockAs(label string) error {
	c.readings[label] = c.stores.Clock.Now()
	return nil
}

func (c *clockContext) millisecondsOfWallClockTimePass(ms int) error {
	c.real.advance(time.Duration(ms) * time.Millisecond)
	return nil
}

func (c *clockContext) readingsShouldBeEqual(a, b string) error {
	va, vb := c.readings[a], c.readings[b]
	if va != vb {
		return fmt.Errorf("expected %q (%v) to equal %q (%v)", a, va, b, vb)
	}
	return nil
}

func (c *clockContext) readingShouldBeGreaterThan(a, b string) error {
	va, vb := c.readings[a], c.readings[b]
	if !(va > vb) {
		return fmt.Errorf("expected %q (%v) to be greater than %q (%v)", a, va, b, vb)
	}
	return nil
}

func InitializeClockScenario(ctx *godog.ScenarioContext) {
	cc := &clockContext{}

	ctx.Before(func(goCtx context.Context, sc *godog.Scenario) (context.Context, error) {
		return goCtx, cc.reset()
	})

	ctx.Step(`^a fresh virtual clock$`, cc.aFreshVirtualClock)
	ctx.Step(`^I pause the clock$`, cc.iPauseTheClock)
	ctx.Step(`^I resume the clock$`, cc.iResumeTheClock)
	ctx.Step(`^I read the clock as "([^"]*)"$`, cc.iReadTheClockAs)
	ctx.Step(`^(\d+) milliseconds of wall-clock time pass$`, cc.millisecondsOfWallClockTimePass)
	ctx.Step(`^"([^"]*)" and "([^"]*)" should be equal$`, cc.readingsShouldBeEqual)
	ctx.Step(`^"([^"]*)" should be greater than "([^"]*)"$`, cc.readingShouldBeGreaterThan)
}
