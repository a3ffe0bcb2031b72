package cli

import (
	"context"
	"fmt"

	"github.com/coldharbor-systems/orbital-sim/internal/application/mediator"
	"github.com/coldharbor-systems/orbital-sim/internal/application/wiring"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/clock"
	"github.com/coldharbor-systems/orbital-sim/internal/infrastructure/config"
	"github.com/coldharbor-systems/orbital-sim/internal/infrastructure/database"
)

// session bundles the mediator and clock an invocation needs, plus
// the teardown for the database connection it opened.
type session struct {
	Mediator mediator.Mediator
	Clock    *clock.SimClock
	close    func() error
}

// openSession loads configuration, connects to the database, and
// builds the same mediator the daemon runs, without re-running the
// startup sequence: an operator session only ever touches state a
// live daemon has already brought up.
func openSession() (*session, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	simClock := clock.New(clock.SystemTime{}, cfg.Simulation.GameTimeScale)
	stores := wiring.NewStores(db, simClock)
	if state, found, err := stores.ClockStore.Load(); err == nil && found {
		simClock.Import(state)
	}

	return &session{
		Mediator: wiring.BuildMediator(stores),
		Clock:    simClock,
		close:    func() error { return database.Close(db) },
	}, nil
}

func (s *session) Close() {
	_ = s.close()
}

func send(s *session, req mediator.Request) (mediator.Response, error) {
	return s.Mediator.Send(context.Background(), req)
}
