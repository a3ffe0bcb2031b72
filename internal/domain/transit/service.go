package transit

import (
	"github.com/coldharbor-systems/orbital-sim/internal/domain/catalog"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/parts"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/shipstats"
)

// Dispatch moves a docked ship onto the least-Δv route toward toID,
// debiting the fuel the maneuver costs. It refuses when the ship is
// already in transit, when toID equals the ship's current location,
// when no cached route exists between the two, or when the ship
// cannot carry enough fuel for the trip.
func Dispatch(s Ship, toID string, routes RouteLookup, now float64) (Ship, error) {
	if s.Status() != StatusDocked {
		return s, ErrNotDocked
	}
	if toID == s.LocationID {
		return s, ErrSameLocation
	}

	dvMS, tofS, path, found := routes.Lookup(s.LocationID, toID)
	if !found {
		return s, ErrNoRoute
	}

	stats := shipstats.Derive(s.Parts, s.FuelKg)
	// Fuel consumed by the burn is the total propellant the rocket
	// equation demands to reach dvMS starting from the ship's dry
	// mass; calling FuelNeededForDeltaV with a zero current load
	// yields that total directly.
	consumed, err := shipstats.FuelNeededForDeltaV(stats.DryMassKg, 0, stats.IspS, dvMS)
	if err != nil {
		return s, ErrInsufficientFuel
	}
	if consumed > stats.FuelKg+1e-9 {
		return s, ErrInsufficientFuel
	}

	newParts, newFuel, err := debitFuel(s.Parts, stats.FuelKg, consumed)
	if err != nil {
		return s, ErrInsufficientFuel
	}

	s.Parts = newParts
	s.FuelKg = newFuel
	s.FromLocationID = s.LocationID
	s.ToLocationID = toID
	s.LocationID = ""
	s.DepartedAtS = now
	s.ArrivesAtS = now + tofS
	s.TransferPath = path
	return s, nil
}

// debitFuel consumes deltaKg of water propellant from the ship's
// fuel tanks, proportionally to each tank's current fill, and returns
// the updated part list alongside the resulting total fuel mass.
func debitFuel(ps []parts.Part, totalBeforeKg, deltaKg float64) ([]parts.Part, float64, error) {
	out := make([]parts.Part, len(ps))
	copy(out, ps)

	if deltaKg <= 0 {
		return out, totalBeforeKg - deltaKg, nil
	}
	if totalBeforeKg <= 0 {
		return out, 0, nil
	}

	for i := range out {
		p := &out[i]
		if p.Category != catalog.CategoryStorage || p.ResourceID != catalog.WaterResourceID || p.Fill == nil {
			continue
		}
		share := p.Fill.CargoMassKg / totalBeforeKg
		take := deltaKg * share
		if take > p.Fill.CargoMassKg {
			take = p.Fill.CargoMassKg
		}
		density := p.MassPerM3Kg
		p.Fill.CargoMassKg -= take
		if density > 0 {
			p.Fill.UsedM3 = p.Fill.CargoMassKg / density
		}
	}

	finalTotal := totalBeforeKg - deltaKg
	if finalTotal < 0 {
		finalTotal = 0
	}
	return out, finalTotal, nil
}

// SettleArrivals promotes every in-transit ship whose arrival time has
// passed to Docked at its destination, via a single bulk update.
// Calling it again before the next arrival is a no-op.
func SettleArrivals(repo Repository, now float64) ([]string, error) {
	return repo.SettleArrivals(now)
}
