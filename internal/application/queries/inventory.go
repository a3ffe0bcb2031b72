package queries

import (
	"context"

	"github.com/coldharbor-systems/orbital-sim/internal/application/mediator"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/inventory"
)

// InventoryAtQuery lists every stack at a location.
type InventoryAtQuery struct {
	LocationID string
}

// InventoryAtResult carries the stacks found.
type InventoryAtResult struct {
	Stacks []inventory.Stack
}

type InventoryAtHandler struct {
	Repo inventory.Repository
}

func NewInventoryAtHandler(repo inventory.Repository) *InventoryAtHandler {
	return &InventoryAtHandler{Repo: repo}
}

func (h *InventoryAtHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	q := request.(InventoryAtQuery)
	stacks, err := h.Repo.ListAt(ctx, q.LocationID)
	if err != nil {
		return nil, err
	}
	return InventoryAtResult{Stacks: stacks}, nil
}
