// Package shipstats derives rocket-equation ship statistics from a
// normalized part list and performs the one-shot container hardening
// migration from legacy inline fuel state.
package shipstats

import (
	"fmt"
	"math"

	"github.com/coldharbor-systems/orbital-sim/internal/domain/catalog"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/parts"
)

// StandardGravity is g0 in m/s^2.
const StandardGravity = 9.80665

// Stats is the full derived-stats payload for a ship.
type Stats struct {
	DryMassKg         float64
	FuelCapacityKg    float64
	FuelKg            float64
	IspS              float64
	ThrustKn          float64
	WetMassKg         float64
	AccelerationGs    float64
	DeltaVRemainingMS float64
}

// Derive computes the full rocket-equation stats payload from a
// normalized part list and a requested current fuel load (clamped
// into [0, capacity]).
func Derive(ps []parts.Part, currentFuelKg float64) Stats {
	var dry, fuelCap, maxThrust, dominantIsp, thrustSum float64

	for _, p := range ps {
		dry += p.MassKg

		if p.Category == catalog.CategoryStorage && p.ResourceID == catalog.WaterResourceID {
			fuelCap += p.CapacityM3 * p.MassPerM3Kg
		}

		if p.Category == catalog.CategoryThruster {
			thrustSum += p.ThrustKn
			if p.ThrustKn > maxThrust {
				maxThrust = p.ThrustKn
				dominantIsp = p.IspS
			}
		}
	}

	fuel := clamp(currentFuelKg, 0, fuelCap)
	wet := dry + fuel

	accel := 0.0
	if wet > 0 {
		accel = thrustSum * 1000 / (wet * StandardGravity)
	}

	dv := 0.0
	if dry > 0 && fuel > 0 && dominantIsp > 0 {
		dv = dominantIsp * StandardGravity * math.Log(wet/dry)
	}

	return Stats{
		DryMassKg:         dry,
		FuelCapacityKg:    fuelCap,
		FuelKg:            fuel,
		IspS:              dominantIsp,
		ThrustKn:          thrustSum,
		WetMassKg:         wet,
		AccelerationGs:    accel,
		DeltaVRemainingMS: dv,
	}
}

// ErrInsufficientIsp is returned by FuelNeededForDeltaV when the ship
// has no usable thruster but a non-zero maneuver is requested.
type ErrInsufficientIsp struct{ DeltaVMS float64 }

func (e *ErrInsufficientIsp) Error() string {
	return fmt.Sprintf("INSUFFICIENT_ISP: cannot compute fuel for dv=%.3f m/s with isp<=0", e.DeltaVMS)
}

// FuelNeededForDeltaV computes the additional fuel (beyond what the
// ship currently carries) required to achieve deltaVMS. Returns 0 when
// the ship already carries enough fuel.
func FuelNeededForDeltaV(dryMassKg, fuelKg, ispS, deltaVMS float64) (float64, error) {
	if ispS <= 0 {
		if deltaVMS > 0 {
			return 0, &ErrInsufficientIsp{DeltaVMS: deltaVMS}
		}
		return 0, nil
	}
	totalFuelNeeded := dryMassKg * (math.Exp(deltaVMS/(ispS*StandardGravity)) - 1)
	needed := totalFuelNeeded - fuelKg
	if needed < 0 {
		return 0, nil
	}
	return needed, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
