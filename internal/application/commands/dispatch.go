package commands

import (
	"context"
	"fmt"

	"github.com/coldharbor-systems/orbital-sim/internal/adapters/metrics"
	"github.com/coldharbor-systems/orbital-sim/internal/application/mediator"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/transit"
)

// ErrNotFound is returned when a command references an entity id that
// does not exist in the store.
type ErrNotFound struct{ Kind, ID string }

func (e *ErrNotFound) Error() string { return fmt.Sprintf("%s not found: %s", e.Kind, e.ID) }

// DispatchCommand moves a docked ship onto the cached route toward a
// destination.
type DispatchCommand struct {
	ShipID string
	ToID   string
	NowS   float64
}

// DispatchResult carries the ship's post-dispatch state.
type DispatchResult struct {
	Ship transit.Ship
}

// DispatchHandler wires transit.Dispatch to the mediator, resolving
// routes through the cached transfer matrix and persisting the result.
type DispatchHandler struct {
	Ships  transit.Repository
	Routes transit.RouteLookup
}

func NewDispatchHandler(ships transit.Repository, routes transit.RouteLookup) *DispatchHandler {
	return &DispatchHandler{Ships: ships, Routes: routes}
}

func (h *DispatchHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd := request.(DispatchCommand)

	ship, found, err := h.Ships.Get(cmd.ShipID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &ErrNotFound{Kind: "ship", ID: cmd.ShipID}
	}
	fromID := ship.LocationID

	dispatched, err := transit.Dispatch(ship, cmd.ToID, h.Routes, cmd.NowS)
	if err != nil {
		metrics.RecordDispatchRejected(reasonFor(err))
		return nil, err
	}
	if err := h.Ships.Save(dispatched); err != nil {
		return nil, err
	}
	metrics.RecordDispatch(fromID, cmd.ToID, ship.FuelKg-dispatched.FuelKg)
	return DispatchResult{Ship: dispatched}, nil
}

// reasonFor maps a Dispatch error to the short label recorded on the
// dispatches_rejected_total metric.
func reasonFor(err error) string {
	if de, ok := err.(transit.DispatchError); ok {
		return string(de)
	}
	return "UNKNOWN"
}

// SettleArrivalsCommand promotes every due in-transit ship to Docked.
type SettleArrivalsCommand struct {
	NowS float64
}

// SettleArrivalsResult lists the ids settled.
type SettleArrivalsResult struct {
	ShipIDs []string
}

type SettleArrivalsHandler struct {
	Ships transit.Repository
}

func NewSettleArrivalsHandler(ships transit.Repository) *SettleArrivalsHandler {
	return &SettleArrivalsHandler{Ships: ships}
}

func (h *SettleArrivalsHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd := request.(SettleArrivalsCommand)
	ids, err := transit.SettleArrivals(h.Ships, cmd.NowS)
	if err != nil {
		return nil, err
	}
	metrics.RecordArrivalsSettled(len(ids))
	return SettleArrivalsResult{ShipIDs: ids}, nil
}
