package economy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coldharbor-systems/orbital-sim/internal/domain/economy"
)

type fakeCosts map[string]float64

func (f fakeCosts) PointCost(techID string) (float64, bool) {
	v, ok := f[techID]
	return v, ok
}

func TestSettleAccruesIncomeOverOneMonth(t *testing.T) {
	// Arrange
	org := economy.Organization{ID: "org-1", LastSettledAtS: 0}

	// Act
	settled := economy.Settle(org, economy.GameMonthSeconds)

	// Assert
	assert.InDelta(t, economy.MonthlyIncomeUSD, settled.BalanceUSD, 1e-6)
	assert.Equal(t, economy.GameMonthSeconds, settled.LastSettledAtS)
}

func TestSettleIsIdempotentAtSameInstant(t *testing.T) {
	// Arrange
	org := economy.Organization{ID: "org-1", LastSettledAtS: 1000, BalanceUSD: 42}

	// Act
	settled := economy.Settle(org, 1000)

	// Assert
	assert.Equal(t, 42.0, settled.BalanceUSD)
}

func TestSettleDeductsResearchTeamUpkeep(t *testing.T) {
	// Arrange
	org := economy.Organization{ID: "org-1", LastSettledAtS: 0, ResearchTeams: 2}

	// Act
	settled := economy.Settle(org, economy.GameMonthSeconds)

	// Assert
	expected := economy.MonthlyIncomeUSD - 2*economy.ResearchTeamCostPerMonth
	assert.InDelta(t, expected, settled.BalanceUSD, 1e-6)
}

func TestSettleAccruesResearchPointsOverOneWeek(t *testing.T) {
	// Arrange
	org := economy.Organization{ID: "org-1", LastSettledAtS: 0, ResearchTeams: 3}

	// Act
	settled := economy.Settle(org, economy.GameWeekSeconds)

	// Assert
	assert.InDelta(t, 3*economy.ResearchTeamPointsPerWeek, settled.ResearchPoints, 1e-6)
}

func TestFireTeamFailsWhenNoneHired(t *testing.T) {
	// Arrange
	org := economy.Organization{ID: "org-1"}

	// Act
	_, err := economy.FireTeam(org, 0)

	// Assert
	assert.IsType(t, &economy.ErrNoTeamsToFire{}, err)
}

func TestFireTeamDoesNotSettle(t *testing.T) {
	// Arrange
	org := economy.Organization{ID: "org-1", LastSettledAtS: 0, ResearchTeams: 2, BalanceUSD: 0}

	// Act
	fired, err := economy.FireTeam(org, economy.GameMonthSeconds)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, fired.ResearchTeams)
	assert.Equal(t, 0.0, fired.BalanceUSD)
	assert.Equal(t, 0.0, fired.LastSettledAtS)
}

func TestHireTeamDebitsCostAndIncrementsHeadcount(t *testing.T) {
	// Arrange
	org := economy.Organization{ID: "org-1", BalanceUSD: economy.TeamHireCostUSD}

	// Act
	hired, err := economy.HireTeam(org, 0)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 0.0, hired.BalanceUSD)
	assert.Equal(t, 1, hired.ResearchTeams)
}

func TestHireTeamFailsWithoutEnoughFunds(t *testing.T) {
	// Arrange
	org := economy.Organization{ID: "org-1", BalanceUSD: 1}

	// Act
	_, err := economy.HireTeam(org, 0)

	// Assert
	assert.IsType(t, &economy.ErrInsufficientFunds{}, err)
}

func TestUnlockTechSpendsPoints(t *testing.T) {
	// Arrange
	org := economy.Organization{ID: "org-1", ResearchPoints: 100}
	costs := fakeCosts{"thruster_mk2": 60}

	// Act
	unlocked, err := economy.UnlockTech(org, "thruster_mk2", nil, costs, 0)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 40.0, unlocked.ResearchPoints)
	assert.True(t, unlocked.HasUnlocked("thruster_mk2"))
}

func TestUnlockTechFailsWithoutEnoughPoints(t *testing.T) {
	// Arrange
	org := economy.Organization{ID: "org-1", ResearchPoints: 10}
	costs := fakeCosts{"thruster_mk2": 60}

	// Act
	_, err := economy.UnlockTech(org, "thruster_mk2", nil, costs, 0)

	// Assert
	assert.IsType(t, &economy.ErrInsufficientPoints{}, err)
}

func TestUnlockTechFailsWhenAlreadyUnlocked(t *testing.T) {
	// Arrange
	org := economy.Organization{
		ID:              "org-1",
		ResearchPoints:  100,
		UnlockedTechIDs: map[string]struct{}{"thruster_mk2": {}},
	}
	costs := fakeCosts{"thruster_mk2": 60}

	// Act
	_, err := economy.UnlockTech(org, "thruster_mk2", nil, costs, 0)

	// Assert
	assert.IsType(t, &economy.ErrAlreadyUnlocked{}, err)
}

func TestUnlockTechFailsWhenPrereqMissing(t *testing.T) {
	// Arrange
	org := economy.Organization{ID: "org-1", ResearchPoints: 100}
	costs := fakeCosts{"thruster_mk3": 60}

	// Act
	_, err := economy.UnlockTech(org, "thruster_mk3", []string{"thruster_mk2"}, costs, 0)

	// Assert
	assert.IsType(t, &economy.ErrPrereqMissing{}, err)
}
