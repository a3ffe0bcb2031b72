package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coldharbor-systems/orbital-sim/internal/domain/catalog"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/inventory"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/parts"
)

func TestPartStackIdentityIsStableForIdenticalParts(t *testing.T) {
	// Arrange
	p1 := parts.Part{ItemID: "thruster.chem.baseline", Name: "Chem", Category: catalog.CategoryThruster, MassKg: 800, ThrustKn: 50, IspS: 450}
	p2 := parts.Part{ItemID: "thruster.chem.baseline", Name: "Chem", Category: catalog.CategoryThruster, MassKg: 800, ThrustKn: 50, IspS: 450}

	// Act
	key1, _, _, _, err1 := inventory.PartStackIdentity(p1)
	key2, _, _, _, err2 := inventory.PartStackIdentity(p2)

	// Assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, key1, key2)
}

func TestPartStackIdentityDiffersForDistinctParts(t *testing.T) {
	// Arrange
	p1 := parts.Part{ItemID: "thruster.chem.baseline", MassKg: 800, ThrustKn: 50}
	p2 := parts.Part{ItemID: "thruster.chem.baseline", MassKg: 801, ThrustKn: 50}

	// Act
	key1, _, _, _, _ := inventory.PartStackIdentity(p1)
	key2, _, _, _, _ := inventory.PartStackIdentity(p2)

	// Assert
	assert.NotEqual(t, key1, key2)
}
