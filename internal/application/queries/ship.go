package queries

import (
	"context"

	"github.com/coldharbor-systems/orbital-sim/internal/application/mediator"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/transit"
)

// GetShipQuery looks up a ship's persisted state by id.
type GetShipQuery struct {
	ShipID string
}

// GetShipResult carries the ship found, if any.
type GetShipResult struct {
	Ship  transit.Ship
	Found bool
}

type GetShipHandler struct {
	Ships transit.Repository
}

func NewGetShipHandler(ships transit.Repository) *GetShipHandler {
	return &GetShipHandler{Ships: ships}
}

func (h *GetShipHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	q := request.(GetShipQuery)
	ship, found, err := h.Ships.Get(q.ShipID)
	if err != nil {
		return nil, err
	}
	return GetShipResult{Ship: ship, Found: found}, nil
}
