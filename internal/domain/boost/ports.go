package boost

import "github.com/coldharbor-systems/orbital-sim/internal/domain/economy"

// LeoBoost is one historical record of a completed LEO delivery
// purchase, appended on every successful BoostToLEO call.
type LeoBoost struct {
	OrgID                 string
	ItemID                string
	ItemName              string
	Quantity              int
	MassKg                float64
	CostUSD               float64
	BoostedAtS            float64
	DestinationLocationID string
}

// Ledger persists organization ledger state and the boost purchase
// history, narrowed to what BoostToLEO needs.
type Ledger interface {
	Get(id string) (economy.Organization, bool, error)
	Save(economy.Organization) error
	RecordBoost(LeoBoost) error
}

// Delivery hands a boosted item off to a location's inventory: a part
// stack for ship components, a resource stack for fuel resources.
type Delivery interface {
	DeliverPart(locationID, itemID string, massKg float64, qty int) error
	DeliverResource(locationID, resourceID string, massKg, densityKgM3 float64, name string) error
}
