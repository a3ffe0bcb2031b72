package queries

import (
	"context"
	"fmt"

	"github.com/coldharbor-systems/orbital-sim/internal/application/mediator"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/boost"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/catalog"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/economy"
)

// LookupRecordQuery resolves one catalog record by its canonical
// category and id, the shape a boost request quotes its item in.
type LookupRecordQuery struct {
	Category catalog.Category
	ID       string
}

// LookupRecordResult carries the resolved record, if any.
type LookupRecordResult struct {
	Record catalog.Record
	Found  bool
}

// BoostableItemsQuery lists the catalog items an organization may
// currently purchase LEO delivery for.
type BoostableItemsQuery struct {
	OrgID string
	NowS  float64
}

// BoostableItemsResult carries the filtered listing.
type BoostableItemsResult struct {
	Records []catalog.Record
}

// CatalogHandler answers read-only questions against the process-wide
// part/resource registry.
type CatalogHandler struct {
	Registry *catalog.Registry
	Orgs     economy.Repository
}

func NewCatalogHandler(reg *catalog.Registry, orgs economy.Repository) *CatalogHandler {
	return &CatalogHandler{Registry: reg, Orgs: orgs}
}

func (h *CatalogHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	switch q := request.(type) {
	case LookupRecordQuery:
		rec, found := h.Registry.RecordByCategory(q.Category, q.ID)
		if !found && q.Category == catalog.CategoryRawMaterial {
			rec, found = h.Registry.Resource(q.ID)
		}
		return LookupRecordResult{Record: rec, Found: found}, nil

	case BoostableItemsQuery:
		org, found, err := h.Orgs.Get(q.OrgID)
		if err != nil {
			return nil, err
		}
		if !found {
			org = economy.Organization{ID: q.OrgID}
		}
		org = economy.Settle(org, q.NowS)
		return BoostableItemsResult{Records: boost.BoostableItems(h.Registry, org)}, nil

	default:
		return nil, fmt.Errorf("unsupported request type: %T", request)
	}
}
