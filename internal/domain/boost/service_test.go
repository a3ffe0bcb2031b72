package boost_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coldharbor-systems/orbital-sim/internal/domain/boost"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/catalog"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/economy"
)

type memLedger struct {
	orgs     map[string]economy.Organization
	recorded int
}

func (l *memLedger) Get(id string) (economy.Organization, bool, error) {
	o, ok := l.orgs[id]
	return o, ok, nil
}

func (l *memLedger) Save(o economy.Organization) error {
	l.orgs[o.ID] = o
	return nil
}

func (l *memLedger) RecordBoost(boost.LeoBoost) error {
	l.recorded++
	return nil
}

type fakeDelivery struct {
	delivered         []string
	deliveredResource []string
}

func (d *fakeDelivery) DeliverPart(locationID, itemID string, massKg float64, qty int) error {
	d.delivered = append(d.delivered, itemID)
	return nil
}

func (d *fakeDelivery) DeliverResource(locationID, resourceID string, massKg, densityKgM3 float64, name string) error {
	d.deliveredResource = append(d.deliveredResource, resourceID)
	return nil
}

func TestIsBoostableHonorsTechLevelSet(t *testing.T) {
	assert.True(t, boost.IsBoostable(catalog.Record{TechLevel: 1}))
	assert.True(t, boost.IsBoostable(catalog.Record{TechLevel: 2}))
	assert.False(t, boost.IsBoostable(catalog.Record{TechLevel: 3}))
}

func TestCalculateCostIncludesBaseAndPerKg(t *testing.T) {
	cost := boost.CalculateCost(100)
	assert.Equal(t, boost.LeoBoostBaseCostUSD+100*boost.LeoBoostCostPerKgUSD, cost)
}

func TestBoostToLEODebitsAndDelivers(t *testing.T) {
	// Arrange
	rec := catalog.Record{ID: "thruster_basic", Category: catalog.CategoryThruster, MassKg: 50, TechLevel: 1}
	ledger := &memLedger{orgs: map[string]economy.Organization{
		"org-1": {
			ID: "org-1", BalanceUSD: 1_000_000_000,
			UnlockedTechIDs: map[string]struct{}{boost.TechNodeID(rec): {}},
		},
	}}
	delivery := &fakeDelivery{}

	// Act
	org, cost, err := boost.BoostToLEO(ledger, delivery, "org-1", rec, 2, "LEO", 0)

	// Assert
	require.NoError(t, err)
	expectedCost := boost.CalculateCost(50 * 2)
	assert.Equal(t, expectedCost, cost)
	assert.Equal(t, 1_000_000_000.0-expectedCost, org.BalanceUSD)
	assert.Equal(t, []string{"thruster_basic"}, delivery.delivered)
	assert.Equal(t, 1, ledger.recorded)
}

func TestBoostToLEORejectsNonBoostableTechLevel(t *testing.T) {
	// Arrange
	ledger := &memLedger{orgs: map[string]economy.Organization{"org-1": {ID: "org-1", BalanceUSD: 1e12}}}
	delivery := &fakeDelivery{}
	rec := catalog.Record{ID: "advanced_reactor", MassKg: 10, TechLevel: 4}

	// Act
	_, _, err := boost.BoostToLEO(ledger, delivery, "org-1", rec, 1, "LEO", 0)

	// Assert
	assert.IsType(t, &boost.ErrNotBoostable{}, err)
	assert.Empty(t, delivery.delivered)
}

func TestBoostToLEORejectsInsufficientFunds(t *testing.T) {
	// Arrange
	rec := catalog.Record{ID: "thruster_basic", Category: catalog.CategoryThruster, MassKg: 50, TechLevel: 1}
	ledger := &memLedger{orgs: map[string]economy.Organization{"org-1": {
		ID: "org-1", BalanceUSD: 1,
		UnlockedTechIDs: map[string]struct{}{boost.TechNodeID(rec): {}},
	}}}
	delivery := &fakeDelivery{}

	// Act
	_, _, err := boost.BoostToLEO(ledger, delivery, "org-1", rec, 1, "LEO", 0)

	// Assert
	assert.IsType(t, &boost.ErrInsufficientFunds{}, err)
	assert.Empty(t, delivery.delivered)
}

func TestBoostToLEORejectsTechLevelItemNotYetUnlocked(t *testing.T) {
	// Arrange
	rec := catalog.Record{ID: "thruster_basic", Category: catalog.CategoryThruster, MassKg: 50, TechLevel: 1}
	ledger := &memLedger{orgs: map[string]economy.Organization{"org-1": {ID: "org-1", BalanceUSD: 1e12}}}
	delivery := &fakeDelivery{}

	// Act
	_, _, err := boost.BoostToLEO(ledger, delivery, "org-1", rec, 1, "LEO", 0)

	// Assert
	assert.IsType(t, &boost.ErrNotBoostable{}, err)
	assert.Empty(t, delivery.delivered)
}

func TestBoostToLEOAllowsWaterRegardlessOfTech(t *testing.T) {
	// Arrange
	rec := catalog.Record{ID: "water", ResourceID: "water", MassKg: 1, MassPerM3Kg: 1000, TechLevel: 0}
	ledger := &memLedger{orgs: map[string]economy.Organization{"org-1": {ID: "org-1", BalanceUSD: 1e12}}}
	delivery := &fakeDelivery{}

	// Act
	_, _, err := boost.BoostToLEO(ledger, delivery, "org-1", rec, 1, "LEO", 0)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, delivery.delivered)
	assert.Equal(t, []string{"water"}, delivery.deliveredResource)
}

func TestBoostableForOrgGatesOnUnlockedTechNode(t *testing.T) {
	// Arrange
	rec := catalog.Record{ID: "thruster_basic", Category: catalog.CategoryThruster, TechLevel: 1}
	locked := economy.Organization{ID: "org-1"}
	unlocked := economy.Organization{ID: "org-1", UnlockedTechIDs: map[string]struct{}{boost.TechNodeID(rec): {}}}

	// Assert
	assert.False(t, boost.BoostableForOrg(rec, locked))
	assert.True(t, boost.BoostableForOrg(rec, unlocked))
}
