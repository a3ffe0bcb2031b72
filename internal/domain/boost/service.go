package boost

import (
	"github.com/coldharbor-systems/orbital-sim/internal/domain/catalog"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/economy"
)

// BoostToLEO settles orgID's ledger, charges it the quoted cost for
// qty units of rec, and on success delivers the units to
// destinationLocationID: a resource stack for the water resource, a
// part stack for everything else. Refuses non-boostable tech levels
// and insufficient funds; the ledger and delivery writes only happen
// once both checks pass. Returns the charged cost alongside the
// settled organization.
func BoostToLEO(
	ledger Ledger, delivery Delivery,
	orgID string, rec catalog.Record, qty int, destinationLocationID string, nowS float64,
) (economy.Organization, float64, error) {
	org, found, err := ledger.Get(orgID)
	if err != nil {
		return economy.Organization{}, 0, err
	}
	if !found {
		org = economy.Organization{ID: orgID}
	}
	org = economy.Settle(org, nowS)

	if !BoostableForOrg(rec, org) {
		return org, 0, &ErrNotBoostable{ItemID: rec.ID}
	}

	totalMassKg := rec.MassKg * float64(qty)
	cost := CalculateCost(totalMassKg)
	if org.BalanceUSD < cost {
		return org, 0, &ErrInsufficientFunds{Required: cost, Available: org.BalanceUSD}
	}

	org.BalanceUSD -= cost
	if err := ledger.Save(org); err != nil {
		return org, 0, err
	}

	if isWaterResource(rec) {
		err = delivery.DeliverResource(destinationLocationID, rec.ResourceID, totalMassKg, rec.MassPerM3Kg, rec.Name)
	} else {
		err = delivery.DeliverPart(destinationLocationID, rec.ID, rec.MassKg, qty)
	}
	if err != nil {
		return org, 0, err
	}

	boostRecord := LeoBoost{
		OrgID: orgID, ItemID: rec.ID, ItemName: rec.Name, Quantity: qty,
		MassKg: totalMassKg, CostUSD: cost, BoostedAtS: nowS,
		DestinationLocationID: destinationLocationID,
	}
	if err := ledger.RecordBoost(boostRecord); err != nil {
		return org, cost, err
	}
	return org, cost, nil
}
