package commands

import (
	"github.com/coldharbor-systems/orbital-sim/internal/domain/routing"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/transit"
)

// CachedRouteLookup adapts the routing package's matrix-backed Route
// query to transit.RouteLookup, the narrow shape Dispatch depends on.
type CachedRouteLookup struct {
	Graph  routing.GraphSource
	Matrix routing.MatrixRepository
}

func (l CachedRouteLookup) Lookup(fromID, toID string) (dvMS, tofS float64, path []string, found bool) {
	result, err := routing.Route(l.Graph, l.Matrix, fromID, toID)
	if err != nil || !result.Found {
		return 0, 0, nil, false
	}
	return result.DvMS, result.TofS, result.Path, true
}

// compile-time assertion this satisfies transit.RouteLookup.
var _ transit.RouteLookup = CachedRouteLookup{}
