package commands

import (
	"context"

	"github.com/coldharbor-systems/orbital-sim/internal/domain/inventory"
)

// InventoryDelivery implements boost.Delivery by crediting a LEO-boosted
// item straight into the destination location's inventory: parts land
// in a part stack keyed by catalog id that records only id, mass and
// qty (no normalized Part payload is stored, and nothing later fills
// one in); the water resource lands in a resource stack instead.
type InventoryDelivery struct {
	Inventory *inventory.Service
}

func NewInventoryDelivery(inv *inventory.Service) *InventoryDelivery {
	return &InventoryDelivery{Inventory: inv}
}

func (d *InventoryDelivery) DeliverPart(locationID, itemID string, massKg float64, qty int) error {
	return d.Inventory.Upsert(
		context.Background(), locationID, inventory.StackTypePart, itemID,
		float64(qty), massKg*float64(qty), 0,
		itemID, itemID, "",
	)
}

// DeliverResource credits a LEO-boosted resource (e.g. water) into the
// destination's resource stack, keyed by resource id, with volume
// derived from density the same way any other resource credit is.
func (d *InventoryDelivery) DeliverResource(locationID, resourceID string, massKg, densityKgM3 float64, name string) error {
	return d.Inventory.AddResource(context.Background(), locationID, resourceID, massKg, densityKgM3, name)
}
