package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coldharbor-systems/orbital-sim/internal/domain/clock"
)

type fakeRealTime struct {
	now time.Time
}

func (f *fakeRealTime) Now() time.Time { return f.now }
func (f *fakeRealTime) advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func TestPauseFreezesTime(t *testing.T) {
	// Arrange
	real := &fakeRealTime{now: time.Unix(1000, 0).UTC()}
	c := clock.New(real, 48)

	// Act
	c.SetPaused(true)
	t1 := c.Now()
	real.advance(50 * time.Millisecond)
	t2 := c.Now()

	// Assert
	assert.Equal(t, t1, t2)

	// Act: resume and advance
	c.SetPaused(false)
	t3 := c.Now()
	real.advance(50 * time.Millisecond)
	t4 := c.Now()

	// Assert
	assert.Greater(t, t4, t3)
}

func TestResetRebasesToFixedEpoch(t *testing.T) {
	// Arrange
	real := &fakeRealTime{now: time.Unix(999999, 0).UTC()}
	c := clock.New(real, 48)
	real.advance(time.Hour)

	// Act
	c.Reset()

	// Assert
	require.Equal(t, clock.FixedEpoch, c.Now())
	require.False(t, c.Paused())
}

func TestExportImportRoundTrip(t *testing.T) {
	// Arrange
	real := &fakeRealTime{now: time.Unix(5000, 0).UTC()}
	c := clock.New(real, 10)
	real.advance(10 * time.Second)
	before := c.Now()

	// Act
	state := c.Export()
	c2 := clock.New(real, 10)
	c2.Import(state)

	// Assert
	assert.Equal(t, before, c2.Now())
}

func TestScaleConvertsRealSecondsToGameSeconds(t *testing.T) {
	// Arrange
	real := &fakeRealTime{now: time.Unix(0, 0).UTC()}
	c := clock.New(real, 48)
	start := c.Now()

	// Act
	real.advance(1 * time.Second)

	// Assert
	assert.InDelta(t, start+48, c.Now(), 1e-6)
}
