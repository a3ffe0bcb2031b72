// Package queries implements the read-only mediator operations: route
// lookups, location inventory listings, and organization ledger reads.
package queries

import (
	"context"

	"github.com/coldharbor-systems/orbital-sim/internal/adapters/metrics"
	"github.com/coldharbor-systems/orbital-sim/internal/application/mediator"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/routing"
)

// RouteQuery asks for the cached least-Δv path between two locations.
type RouteQuery struct {
	FromID string
	ToID   string
}

// RouteResult mirrors routing.RouteResult as the mediator response.
type RouteResult struct {
	DvMS  float64
	TofS  float64
	Path  []string
	Found bool
}

type RouteHandler struct {
	Graph  routing.GraphSource
	Matrix routing.MatrixRepository
}

func NewRouteHandler(graph routing.GraphSource, matrix routing.MatrixRepository) *RouteHandler {
	return &RouteHandler{Graph: graph, Matrix: matrix}
}

func (h *RouteHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	q := request.(RouteQuery)
	r, err := routing.Route(h.Graph, h.Matrix, q.FromID, q.ToID)
	if err != nil {
		return nil, err
	}
	if !r.Found {
		metrics.RecordRouteMiss(q.FromID, q.ToID)
	}
	return RouteResult{DvMS: r.DvMS, TofS: r.TofS, Path: r.Path, Found: r.Found}, nil
}
