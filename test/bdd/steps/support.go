// Package steps holds the godog step definitions exercised against
// the real command/query mediator over an isolated in-memory database
// per scenario.
package steps

import (
	"time"

	"github.com/coldharbor-systems/orbital-sim/internal/application/wiring"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/clock"
	"github.com/coldharbor-systems/orbital-sim/internal/infrastructure/database"
)

// fakeRealTime implements clock.RealTime with a manually advanceable
// wall-clock reading, so scenarios can exercise pause/resume semantics
// without a real sleep.
type fakeRealTime struct {
	now time.Time
}

func (f *fakeRealTime) Now() time.Time { return f.now }

func (f *fakeRealTime) advance(d time.Duration) {
	f.now = f.now.Add(d)
}

// newWorld builds a fresh mediator wired over its own in-memory
// database and a clock driven by a fake wall-clock source, so every
// scenario starts from an empty, independent world.
func newWorld() (*wiring.Stores, *fakeRealTime, error) {
	db, err := database.NewTestConnection()
	if err != nil {
		return nil, nil, err
	}
	real := &fakeRealTime{now: time.Unix(1_700_000_000, 0).UTC()}
	simClock := clock.New(real, clock.DefaultScale)
	return wiring.NewStores(db, simClock), real, nil
}
