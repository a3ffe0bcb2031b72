package economy

// Settle accrues income, research-team upkeep, and research points for
// every whole and fractional game-second elapsed since the
// organization's last settlement, then advances LastSettledAtS to now.
// A non-positive elapsed interval is a no-op, making repeated calls at
// the same instant idempotent.
func Settle(org Organization, nowS float64) Organization {
	elapsed := nowS - org.LastSettledAtS
	if elapsed <= 0 {
		return org
	}

	monthFraction := elapsed / GameMonthSeconds
	weekFraction := elapsed / GameWeekSeconds

	income := MonthlyIncomeUSD * monthFraction
	upkeep := float64(org.ResearchTeams) * ResearchTeamCostPerMonth * monthFraction
	pointsGained := float64(org.ResearchTeams) * ResearchTeamPointsPerWeek * weekFraction

	org.BalanceUSD += income - upkeep
	org.ResearchPoints += pointsGained
	org.LastSettledAtS = nowS
	return org
}

// HireTeam settles the organization to the current instant, debits
// TeamHireCostUSD, and adds one research team to its headcount.
// Refuses when the balance cannot cover the hire cost.
func HireTeam(org Organization, nowS float64) (Organization, error) {
	org = Settle(org, nowS)
	if org.BalanceUSD < TeamHireCostUSD {
		return org, &ErrInsufficientFunds{Required: TeamHireCostUSD, Available: org.BalanceUSD}
	}
	org.BalanceUSD -= TeamHireCostUSD
	org.ResearchTeams++
	return org, nil
}

// FireTeam removes one research team without settling the
// organization first. Refuses when the organization has no teams to
// remove.
func FireTeam(org Organization, nowS float64) (Organization, error) {
	if org.ResearchTeams <= 0 {
		return org, &ErrNoTeamsToFire{}
	}
	org.ResearchTeams--
	return org, nil
}

// UnlockTech settles the organization, then spends research points to
// unlock techID. Refuses if techID is already unlocked, any prereqID
// is not already unlocked, or the organization cannot afford the
// point cost.
func UnlockTech(org Organization, techID string, prereqIDs []string, costs TechCostLookup, nowS float64) (Organization, error) {
	org = Settle(org, nowS)
	if org.HasUnlocked(techID) {
		return org, &ErrAlreadyUnlocked{TechID: techID}
	}
	for _, prereqID := range prereqIDs {
		if !org.HasUnlocked(prereqID) {
			return org, &ErrPrereqMissing{TechID: techID, PrereqID: prereqID}
		}
	}
	cost, ok := costs.PointCost(techID)
	if !ok {
		cost = 0
	}
	if org.ResearchPoints < cost {
		return org, &ErrInsufficientPoints{Required: cost, Available: org.ResearchPoints}
	}
	org.ResearchPoints -= cost
	if org.UnlockedTechIDs == nil {
		org.UnlockedTechIDs = map[string]struct{}{}
	}
	org.UnlockedTechIDs[techID] = struct{}{}
	return org, nil
}
