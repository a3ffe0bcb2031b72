// Package clock models the simulation's virtual time: a single scaled
// clock shared by every organization and ship in the world.
package clock

import (
	"sync"
	"time"
)

// FixedEpoch is the instant a reset rebases the game clock to:
// 2000-01-01T00:00:00Z, expressed as Unix seconds.
const FixedEpoch = 946684800.0

// DefaultScale converts one elapsed real second into this many game
// seconds when the clock is running.
const DefaultScale = 48.0

// RealTime abstracts wall-clock reads so the clock can be driven by a
// fake in tests without sleeping.
type RealTime interface {
	Now() time.Time
}

// SystemTime implements RealTime using the actual system clock.
type SystemTime struct{}

func (SystemTime) Now() time.Time { return time.Now().UTC() }

// SimClock is the authoritative virtual-time source. It holds three
// scalars behind a mutex and performs no I/O; persistence is the
// caller's responsibility via Export/Import.
type SimClock struct {
	mu sync.Mutex

	real RealTime
	scale float64

	realAnchorS float64
	gameAnchorS float64
	paused      bool
}

// New constructs a SimClock anchored at the given real-time source,
// starting unpaused at FixedEpoch. scale <= 0 falls back to DefaultScale.
func New(real RealTime, scale float64) *SimClock {
	if real == nil {
		real = SystemTime{}
	}
	if scale <= 0 {
		scale = DefaultScale
	}
	now := realSeconds(real.Now())
	return &SimClock{
		real:        real,
		scale:       scale,
		realAnchorS: now,
		gameAnchorS: FixedEpoch,
		paused:      false,
	}
}

func realSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}

// Now returns the current game time in seconds since the Unix epoch.
func (c *SimClock) Now() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nowLocked()
}

func (c *SimClock) nowLocked() float64 {
	if c.paused {
		return c.gameAnchorS
	}
	realNow := realSeconds(c.real.Now())
	return c.gameAnchorS + (realNow-c.realAnchorS)*c.scale
}

// SetPaused pauses or resumes the clock, rebasing both anchors so game
// time is continuous across the transition.
func (c *SimClock) SetPaused(paused bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gameAnchorS = c.nowLocked()
	c.realAnchorS = realSeconds(c.real.Now())
	c.paused = paused
}

// Paused reports whether the clock is currently paused.
func (c *SimClock) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// Reset rebases the clock to FixedEpoch and unpauses it.
func (c *SimClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gameAnchorS = FixedEpoch
	c.realAnchorS = realSeconds(c.real.Now())
	c.paused = false
}

// State is the exported triple used for persistence.
type State struct {
	RealAnchorS float64
	GameAnchorS float64
	Paused      bool
}

// Export captures the clock's current anchors for persistence.
func (c *SimClock) Export() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		RealAnchorS: c.realAnchorS,
		GameAnchorS: c.gameAnchorS,
		Paused:      c.paused,
	}
}

// Import restores a previously exported state verbatim, without
// altering real-time continuity (used on process startup).
func (c *SimClock) Import(s State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.realAnchorS = s.RealAnchorS
	c.gameAnchorS = s.GameAnchorS
	c.paused = s.Paused
}
