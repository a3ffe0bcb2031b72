package commands

import (
	"context"

	"github.com/coldharbor-systems/orbital-sim/internal/adapters/metrics"
	"github.com/coldharbor-systems/orbital-sim/internal/application/mediator"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/economy"
)

// EconomyHandler dispatches the hire/fire/unlock organization ledger
// commands, all of which share the same settle-then-mutate-then-save
// shape.
type EconomyHandler struct {
	Orgs economy.Repository
}

func NewEconomyHandler(orgs economy.Repository) *EconomyHandler {
	return &EconomyHandler{Orgs: orgs}
}

// HireTeamCommand hires one research team for OrgID.
type HireTeamCommand struct {
	OrgID string
	NowS  float64
}

// FireTeamCommand fires one research team from OrgID.
type FireTeamCommand struct {
	OrgID string
	NowS  float64
}

// UnlockTechCommand spends research points to unlock a tech node.
type UnlockTechCommand struct {
	OrgID     string
	TechID    string
	PrereqIDs []string
	Costs     economy.TechCostLookup
	NowS      float64
}

// OrgResult carries an organization's post-command ledger state.
type OrgResult struct {
	Org economy.Organization
}

// settleDeltas replays Settle's accrual formula against org's
// pre-settlement state, purely to report the income/upkeep split on
// the ledger_income_usd_total and ledger_upkeep_usd_total metrics;
// economy.Settle itself only returns the post-settlement balance.
func settleDeltas(org economy.Organization, nowS float64) (incomeUSD, upkeepUSD float64) {
	elapsed := nowS - org.LastSettledAtS
	if elapsed <= 0 {
		return 0, 0
	}
	monthFraction := elapsed / economy.GameMonthSeconds
	incomeUSD = economy.MonthlyIncomeUSD * monthFraction
	upkeepUSD = float64(org.ResearchTeams) * economy.ResearchTeamCostPerMonth * monthFraction
	return incomeUSD, upkeepUSD
}

func (h *EconomyHandler) loadOrNew(id string) (economy.Organization, error) {
	org, found, err := h.Orgs.Get(id)
	if err != nil {
		return economy.Organization{}, err
	}
	if !found {
		org = economy.Organization{ID: id}
	}
	return org, nil
}

func (h *EconomyHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	switch cmd := request.(type) {
	case HireTeamCommand:
		org, err := h.loadOrNew(cmd.OrgID)
		if err != nil {
			return nil, err
		}
		incomeUSD, upkeepUSD := settleDeltas(org, cmd.NowS)
		hired, err := economy.HireTeam(org, cmd.NowS)
		if err != nil {
			return nil, err
		}
		if err := h.Orgs.Save(hired); err != nil {
			return nil, err
		}
		metrics.RecordSettle(cmd.OrgID, incomeUSD, upkeepUSD)
		return OrgResult{Org: hired}, nil

	case FireTeamCommand:
		org, err := h.loadOrNew(cmd.OrgID)
		if err != nil {
			return nil, err
		}
		fired, err := economy.FireTeam(org, cmd.NowS)
		if err != nil {
			return nil, err
		}
		if err := h.Orgs.Save(fired); err != nil {
			return nil, err
		}
		return OrgResult{Org: fired}, nil

	case UnlockTechCommand:
		org, err := h.loadOrNew(cmd.OrgID)
		if err != nil {
			return nil, err
		}
		incomeUSD, upkeepUSD := settleDeltas(org, cmd.NowS)
		unlocked, err := economy.UnlockTech(org, cmd.TechID, cmd.PrereqIDs, cmd.Costs, cmd.NowS)
		if err != nil {
			return nil, err
		}
		if err := h.Orgs.Save(unlocked); err != nil {
			return nil, err
		}
		metrics.RecordSettle(cmd.OrgID, incomeUSD, upkeepUSD)
		if cost, ok := cmd.Costs.PointCost(cmd.TechID); ok {
			metrics.RecordTechUnlock(cmd.OrgID, cmd.TechID, cost)
		}
		return OrgResult{Org: unlocked}, nil

	default:
		return nil, fmtUnsupported(request)
	}
}
