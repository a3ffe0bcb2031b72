package economy

// Repository persists organization ledger state.
type Repository interface {
	Get(id string) (Organization, bool, error)
	Save(Organization) error
}

// TechCostLookup resolves the research-point cost of unlocking a tech
// node, an external collaborator backed by the catalog's tech items.
type TechCostLookup interface {
	PointCost(techID string) (float64, bool)
}

// FixedCost implements TechCostLookup for the wire surface's
// unlock_tech(org, id, cost, prereqs) shape, where the caller quotes
// the point cost up front rather than the core resolving it from a
// catalog-backed cost table.
type FixedCost float64

func (c FixedCost) PointCost(techID string) (float64, bool) { return float64(c), true }
