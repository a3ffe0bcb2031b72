package commands

import (
	"context"

	"github.com/coldharbor-systems/orbital-sim/internal/application/mediator"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/clock"
)

// SetPausedCommand pauses or resumes the virtual clock.
type SetPausedCommand struct {
	Paused bool
}

// ResetClockCommand rebases the virtual clock to its fixed epoch.
type ResetClockCommand struct{}

// ClockResult carries the clock's current reading after the command.
type ClockResult struct {
	NowS   float64
	Paused bool
}

// ClockHandler mutates the process-wide virtual clock and persists its
// anchors so the change survives a restart.
type ClockHandler struct {
	Clock *clock.SimClock
	Store interface {
		Save(clock.State) error
	}
}

func NewClockHandler(c *clock.SimClock, store interface{ Save(clock.State) error }) *ClockHandler {
	return &ClockHandler{Clock: c, Store: store}
}

func (h *ClockHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	switch cmd := request.(type) {
	case SetPausedCommand:
		h.Clock.SetPaused(cmd.Paused)
	case ResetClockCommand:
		h.Clock.Reset()
	default:
		return nil, fmtUnsupported(request)
	}
	if h.Store != nil {
		if err := h.Store.Save(h.Clock.Export()); err != nil {
			return nil, err
		}
	}
	return ClockResult{NowS: h.Clock.Now(), Paused: h.Clock.Paused()}, nil
}
