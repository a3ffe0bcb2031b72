// Package stats exposes the ship stats derivation as a mediator query,
// so mediator callers can preview a part loadout's performance
// before it is ever assembled into a ship.
package stats

import (
	"context"

	"github.com/coldharbor-systems/orbital-sim/internal/application/mediator"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/parts"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/shipstats"
)

// PreviewQuery asks for the derived stats of a candidate part loadout.
type PreviewQuery struct {
	Parts         []parts.Part
	CurrentFuelKg float64
}

// PreviewResult carries the derived stats.
type PreviewResult struct {
	Stats shipstats.Stats
}

type PreviewHandler struct{}

func NewPreviewHandler() *PreviewHandler { return &PreviewHandler{} }

func (h *PreviewHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	q := request.(PreviewQuery)
	s := shipstats.Derive(q.Parts, q.CurrentFuelKg)
	return PreviewResult{Stats: s}, nil
}
