package inventory

import "strings"

// Phase is the physical state bucket used to group a ship's on-board
// resources for display and capacity accounting.
type Phase string

const (
	PhaseSolid  Phase = "solid"
	PhaseLiquid Phase = "liquid"
	PhaseGas    Phase = "gas"
)

var gasHints = []string{"helium", "hydrogen", "nitrogen", "oxygen", "argon", "methane", "deuterium"}
var liquidHints = []string{"water", "propellant", "hydrolox", "ammonia", "fuel"}

// ClassifyResourcePhase determines the physical phase of a resource
// from name/id substring hints first, falling back to density
// thresholds: <200 kg/m3 gas, <2000 liquid, else solid.
func ClassifyResourcePhase(resourceID, resourceName string, densityKgM3 float64) Phase {
	text := strings.ToLower(strings.TrimSpace(resourceID)) + " " + strings.ToLower(strings.TrimSpace(resourceName))

	for _, h := range gasHints {
		if strings.Contains(text, h) {
			return PhaseGas
		}
	}
	for _, h := range liquidHints {
		if strings.Contains(text, h) {
			return PhaseLiquid
		}
	}

	d := densityKgM3
	if d < 0 {
		d = 0
	}
	if d > 0 {
		if d < 200 {
			return PhaseGas
		}
		if d < 2000 {
			return PhaseLiquid
		}
	}
	return PhaseSolid
}
