package shipstats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coldharbor-systems/orbital-sim/internal/domain/catalog"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/parts"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/shipstats"
)

func testShip() []parts.Part {
	return []parts.Part{
		{Category: catalog.CategoryThruster, ThrustKn: 50, IspS: 900, MassKg: 800},
		{Category: catalog.CategoryStorage, ResourceID: "water", CapacityM3: 10, MassPerM3Kg: 1000, MassKg: 150},
		{Category: catalog.CategoryGeneric, MassKg: 4200},
	}
}

func TestDeriveWetMassEqualsDryPlusFuel(t *testing.T) {
	// Arrange
	ps := testShip()

	// Act
	stats := shipstats.Derive(ps, 2000)

	// Assert
	assert.Equal(t, stats.DryMassKg+stats.FuelKg, stats.WetMassKg)
	assert.LessOrEqual(t, stats.FuelKg, stats.FuelCapacityKg)
}

func TestDeliverDispatchFuelNeeded(t *testing.T) {
	// Arrange: S5 scenario — isp=900, dry=5000, dv=900. Dispatch asks for
	// the whole burn, so it passes a current load of 0 (the ship's 2000 kg
	// then covers the result).
	dryMassKg := 5000.0
	fuelKg := 0.0
	ispS := 900.0

	// Act
	needed, err := shipstats.FuelNeededForDeltaV(dryMassKg, fuelKg, ispS, 900)

	// Assert: 5000 * (exp(900/(900*9.80665)) - 1) ≈ 536.8 kg
	require.NoError(t, err)
	assert.InDelta(t, 537, needed, 1)
}

func TestFuelNeededFailsWithoutIsp(t *testing.T) {
	// Act
	_, err := shipstats.FuelNeededForDeltaV(5000, 0, 0, 100)

	// Assert
	require.Error(t, err)
	var target *shipstats.ErrInsufficientIsp
	assert.ErrorAs(t, err, &target)
}

func TestHardenContainersDistributesProportionally(t *testing.T) {
	// Arrange: two water tanks, 10 m3 and 30 m3 capacity, legacy fuel 4000kg at density 1000kg/m3
	ps := []parts.Part{
		{Category: catalog.CategoryStorage, ResourceID: "water", CapacityM3: 10, MassPerM3Kg: 1000},
		{Category: catalog.CategoryStorage, ResourceID: "water", CapacityM3: 30, MassPerM3Kg: 1000},
	}

	// Act
	hardened, changed := shipstats.HardenContainers(ps, 4000)

	// Assert: total capacity 40 m3 * 1000 kg/m3 = 40000kg capacity; fuel 4000 -> ratio 0.1
	require.True(t, changed)
	require.NotNil(t, hardened[0].Fill)
	require.NotNil(t, hardened[1].Fill)
	assert.InDelta(t, 1.0, hardened[0].Fill.UsedM3, 1e-9)
	assert.InDelta(t, 1000.0, hardened[0].Fill.CargoMassKg, 1e-9)
	assert.InDelta(t, 3.0, hardened[1].Fill.UsedM3, 1e-9)
	assert.InDelta(t, 3000.0, hardened[1].Fill.CargoMassKg, 1e-9)
}

func TestHardenContainersSkipsAlreadyFilled(t *testing.T) {
	// Arrange
	ps := []parts.Part{
		{Category: catalog.CategoryStorage, ResourceID: "water", CapacityM3: 10, MassPerM3Kg: 1000,
			Fill: &parts.ContainerFill{UsedM3: 5, CargoMassKg: 5000, ResourceID: "water"}},
	}

	// Act
	_, changed := shipstats.HardenContainers(ps, 9999)

	// Assert
	assert.False(t, changed)
}
