package locationgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coldharbor-systems/orbital-sim/internal/domain/locationgraph"
)

type memGraphRepo struct {
	locations map[string]locationgraph.Location
	edges     map[[2]string]locationgraph.Edge
}

func newMemGraphRepo() *memGraphRepo {
	return &memGraphRepo{locations: map[string]locationgraph.Location{}, edges: map[[2]string]locationgraph.Edge{}}
}

func (r *memGraphRepo) CountLocations() (int, error) { return len(r.locations), nil }

func (r *memGraphRepo) UpsertLocations(rows []locationgraph.Location) error {
	for _, l := range rows {
		r.locations[l.ID] = l
	}
	return nil
}

func (r *memGraphRepo) UpsertEdges(rows []locationgraph.Edge) error {
	for _, e := range rows {
		r.edges[[2]string{e.FromID, e.ToID}] = e
	}
	return nil
}

func (r *memGraphRepo) AllLocations() ([]locationgraph.Location, error) {
	out := make([]locationgraph.Location, 0, len(r.locations))
	for _, l := range r.locations {
		out = append(out, l)
	}
	return out, nil
}

func (r *memGraphRepo) AllEdges() ([]locationgraph.Edge, error) {
	out := make([]locationgraph.Edge, 0, len(r.edges))
	for _, e := range r.edges {
		out = append(out, e)
	}
	return out, nil
}

func TestSeedBaselineIsIdempotent(t *testing.T) {
	// Arrange
	repo := newMemGraphRepo()

	// Act
	require.NoError(t, locationgraph.SeedBaseline(repo))
	countAfterFirst := len(repo.locations)
	require.NoError(t, locationgraph.SeedBaseline(repo))

	// Assert: second call is a no-op because the table is non-empty
	assert.Equal(t, countAfterFirst, len(repo.locations))
	assert.Contains(t, repo.locations, "LEO")
	assert.Contains(t, repo.edges, [2]string{"LEO", "HEO"})
}

func TestExpandSolSystemAddsInterplanetaryEdges(t *testing.T) {
	// Arrange
	repo := newMemGraphRepo()
	require.NoError(t, locationgraph.SeedBaseline(repo))

	// Act
	require.NoError(t, locationgraph.ExpandSolSystem(repo))

	// Assert
	assert.Contains(t, repo.locations, "MERC_ORB")
	assert.Contains(t, repo.locations, "PHOBOS")
	edge, ok := repo.edges[[2]string{"LEO", "MERC_ORB"}]
	require.True(t, ok)
	assert.Greater(t, edge.DvMS, 0.0)
	assert.Greater(t, edge.TofS, 0.0)
}

func TestHohmannOrbitChangeZeroForNonPositiveRadii(t *testing.T) {
	dv, tof := locationgraph.HohmannOrbitChange(398600.4418, 0, 100)
	assert.Equal(t, 0.0, dv)
	assert.Equal(t, 0.0, tof)
}
