package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coldharbor-systems/orbital-sim/internal/domain/inventory"
)

type memRepo struct {
	rows map[string]inventory.Stack
}

func newMemRepo() *memRepo { return &memRepo{rows: map[string]inventory.Stack{}} }

func key(locationID string, stackType inventory.StackType, stackKey string) string {
	return locationID + "|" + string(stackType) + "|" + stackKey
}

func (m *memRepo) Get(_ context.Context, locationID string, stackType inventory.StackType, stackKey string) (inventory.Stack, bool, error) {
	s, ok := m.rows[key(locationID, stackType, stackKey)]
	return s, ok, nil
}

func (m *memRepo) Put(_ context.Context, s inventory.Stack) error {
	m.rows[key(s.LocationID, s.StackType, s.StackKey)] = s
	return nil
}

func (m *memRepo) Delete(_ context.Context, locationID string, stackType inventory.StackType, stackKey string) error {
	delete(m.rows, key(locationID, stackType, stackKey))
	return nil
}

func (m *memRepo) ListPartsByItemID(_ context.Context, locationID, itemID string) ([]inventory.Stack, error) {
	var out []inventory.Stack
	for _, s := range m.rows {
		if s.LocationID == locationID && s.StackType == inventory.StackTypePart && s.ItemID == itemID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memRepo) ListAt(_ context.Context, locationID string) ([]inventory.Stack, error) {
	var out []inventory.Stack
	for _, s := range m.rows {
		if s.LocationID == locationID {
			out = append(out, s)
		}
	}
	return out, nil
}

func fixedNow() float64 { return 1000.0 }

func TestUpsertNoopOnAbsentRowWithNonPositiveDeltas(t *testing.T) {
	// Arrange
	repo := newMemRepo()
	svc := inventory.NewService(repo, fixedNow)

	// Act
	err := svc.Upsert(context.Background(), "LEO", inventory.StackTypeResource, "water", -5, 0, 0, "water", "Water", "{}")

	// Assert
	require.NoError(t, err)
	_, found, _ := repo.Get(context.Background(), "LEO", inventory.StackTypeResource, "water")
	assert.False(t, found)
}

func TestUpsertInsertsClampedOnPositiveDelta(t *testing.T) {
	// Arrange
	repo := newMemRepo()
	svc := inventory.NewService(repo, fixedNow)

	// Act
	err := svc.Upsert(context.Background(), "LEO", inventory.StackTypeResource, "water", 10, 10, 0.01, "water", "Water", "{}")

	// Assert
	require.NoError(t, err)
	s, found, _ := repo.Get(context.Background(), "LEO", inventory.StackTypeResource, "water")
	require.True(t, found)
	assert.Equal(t, 10.0, s.Quantity)
}

func TestUpsertDeletesWhenBelowEpsilon(t *testing.T) {
	// Arrange
	repo := newMemRepo()
	svc := inventory.NewService(repo, fixedNow)
	require.NoError(t, svc.Upsert(context.Background(), "LEO", inventory.StackTypeResource, "water", 5, 5, 0, "water", "Water", "{}"))

	// Act
	err := svc.Upsert(context.Background(), "LEO", inventory.StackTypeResource, "water", -5, -5, 0, "water", "Water", "{}")

	// Assert
	require.NoError(t, err)
	_, found, _ := repo.Get(context.Background(), "LEO", inventory.StackTypeResource, "water")
	assert.False(t, found)
}

func TestConsumePartsByItemIDsFailsAtomicallyWhenShort(t *testing.T) {
	// Arrange
	repo := newMemRepo()
	svc := inventory.NewService(repo, fixedNow)
	require.NoError(t, repo.Put(context.Background(), inventory.Stack{
		LocationID: "LEO", StackType: inventory.StackTypePart, StackKey: "k1",
		ItemID: "thruster.chem.baseline", Name: "Chem", Quantity: 1, MassKg: 800, UpdatedAtS: 1,
	}))

	// Act: request 2 but only 1 available
	_, err := svc.ConsumePartsByItemIDs(context.Background(), "LEO", []string{"thruster.chem.baseline", "thruster.chem.baseline"})

	// Assert
	require.Error(t, err)
	var shortErr *inventory.ErrInsufficientInventory
	require.ErrorAs(t, err, &shortErr)
	assert.Equal(t, 2, shortErr.Shortfalls["thruster.chem.baseline"].Requested)
	assert.Equal(t, 1, shortErr.Shortfalls["thruster.chem.baseline"].Available)

	// Assert no partial debit occurred
	s, found, _ := repo.Get(context.Background(), "LEO", inventory.StackTypePart, "k1")
	require.True(t, found)
	assert.Equal(t, 1.0, s.Quantity)
}

func TestClassifyResourcePhase(t *testing.T) {
	assert.Equal(t, inventory.PhaseLiquid, inventory.ClassifyResourcePhase("water", "Water", 1000))
	assert.Equal(t, inventory.PhaseGas, inventory.ClassifyResourcePhase("helium", "Helium", 0))
	assert.Equal(t, inventory.PhaseSolid, inventory.ClassifyResourcePhase("iron_oxide", "Iron Oxide", 5170))
	assert.Equal(t, inventory.PhaseGas, inventory.ClassifyResourcePhase("unknown", "Unknown", 50))
}
