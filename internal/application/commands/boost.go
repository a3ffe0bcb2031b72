package commands

import (
	"context"

	"github.com/coldharbor-systems/orbital-sim/internal/adapters/metrics"
	"github.com/coldharbor-systems/orbital-sim/internal/application/mediator"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/boost"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/catalog"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/economy"
)

// BoostCommand requests LEO delivery of qty units of a catalog record
// to a destination location, on an organization's account.
type BoostCommand struct {
	OrgID                 string
	Record                catalog.Record
	Qty                   int
	DestinationLocationID string
	NowS                  float64
}

// BoostResult carries the organization's post-purchase ledger state.
type BoostResult struct {
	Org economy.Organization
}

type BoostHandler struct {
	Ledger   boost.Ledger
	Delivery boost.Delivery
}

func NewBoostHandler(ledger boost.Ledger, delivery boost.Delivery) *BoostHandler {
	return &BoostHandler{Ledger: ledger, Delivery: delivery}
}

func (h *BoostHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd := request.(BoostCommand)
	org, cost, err := boost.BoostToLEO(h.Ledger, h.Delivery, cmd.OrgID, cmd.Record, cmd.Qty, cmd.DestinationLocationID, cmd.NowS)
	if err != nil {
		return nil, err
	}
	metrics.RecordBoostPurchase(cmd.OrgID, cost)
	return BoostResult{Org: org}, nil
}
