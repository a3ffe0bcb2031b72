package routing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coldharbor-systems/orbital-sim/internal/domain/locationgraph"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/routing"
)

func TestDijkstraAllPairsPrefersDirectOverTwoHop(t *testing.T) {
	// Arrange: S2 — LEO->HEO (900,7200), HEO->GEO (1200,14400), LEO->GEO (1800,21600)
	nodes := []string{"LEO", "HEO", "GEO"}
	edges := []locationgraph.Edge{
		{FromID: "LEO", ToID: "HEO", DvMS: 900, TofS: 7200},
		{FromID: "HEO", ToID: "GEO", DvMS: 1200, TofS: 14400},
		{FromID: "LEO", ToID: "GEO", DvMS: 1800, TofS: 21600},
	}

	// Act
	entries := routing.DijkstraAllPairs(nodes, edges)

	// Assert
	var found *routing.MatrixEntry
	for i := range entries {
		if entries[i].FromID == "LEO" && entries[i].ToID == "GEO" {
			found = &entries[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, 1800.0, found.DvMS)
	assert.Equal(t, 21600.0, found.TofS)
	assert.Equal(t, []string{"LEO", "GEO"}, found.Path)
}

func TestDijkstraSelfEntryIsZero(t *testing.T) {
	// Arrange
	nodes := []string{"LEO"}
	var edges []locationgraph.Edge

	// Act
	entries := routing.DijkstraAllPairs(nodes, edges)

	// Assert
	require.Len(t, entries, 1)
	assert.Equal(t, 0.0, entries[0].DvMS)
	assert.Equal(t, []string{"LEO"}, entries[0].Path)
}

func TestDijkstraOmitsUnreachablePairs(t *testing.T) {
	// Arrange: two disconnected nodes
	nodes := []string{"LEO", "ISOLATED"}
	var edges []locationgraph.Edge

	// Act
	entries := routing.DijkstraAllPairs(nodes, edges)

	// Assert: only self-entries, no LEO->ISOLATED
	for _, e := range entries {
		if e.FromID != e.ToID {
			t.Fatalf("unexpected reachable pair %v", e)
		}
	}
}

func TestHashEdgesIsOrderIndependent(t *testing.T) {
	// Arrange
	a := []locationgraph.Edge{{FromID: "A", ToID: "B", DvMS: 1, TofS: 2}, {FromID: "B", ToID: "A", DvMS: 3, TofS: 4}}
	b := []locationgraph.Edge{{FromID: "B", ToID: "A", DvMS: 3, TofS: 4}, {FromID: "A", ToID: "B", DvMS: 1, TofS: 2}}

	// Act
	h1, err1 := routing.HashEdges(a)
	h2, err2 := routing.HashEdges(b)

	// Assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, h1, h2)
}

func TestHashEdgesChangesWhenEdgeSetChanges(t *testing.T) {
	// Arrange
	a := []locationgraph.Edge{{FromID: "A", ToID: "B", DvMS: 1, TofS: 2}}
	b := []locationgraph.Edge{{FromID: "A", ToID: "B", DvMS: 5, TofS: 2}}

	// Act
	h1, _ := routing.HashEdges(a)
	h2, _ := routing.HashEdges(b)

	// Assert
	assert.NotEqual(t, h1, h2)
}
