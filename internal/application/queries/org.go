package queries

import (
	"context"

	"github.com/coldharbor-systems/orbital-sim/internal/application/mediator"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/economy"
)

// GetOrgQuery settles and returns an organization's ledger state.
type GetOrgQuery struct {
	OrgID string
	NowS  float64
}

// GetOrgResult carries the settled organization.
type GetOrgResult struct {
	Org   economy.Organization
	Found bool
}

type GetOrgHandler struct {
	Orgs economy.Repository
}

func NewGetOrgHandler(orgs economy.Repository) *GetOrgHandler {
	return &GetOrgHandler{Orgs: orgs}
}

func (h *GetOrgHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	q := request.(GetOrgQuery)
	org, found, err := h.Orgs.Get(q.OrgID)
	if err != nil {
		return nil, err
	}
	if !found {
		return GetOrgResult{Found: false}, nil
	}
	return GetOrgResult{Org: economy.Settle(org, q.NowS), Found: true}, nil
}
