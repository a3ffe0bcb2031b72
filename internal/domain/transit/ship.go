// Package transit implements the ship-transit state machine: a ship
// is either Docked at a location or InTransit between two, with
// arrival settled in bulk against the virtual clock.
package transit

import "github.com/coldharbor-systems/orbital-sim/internal/domain/parts"

// Status is the ship's navigation status.
type Status string

const (
	StatusDocked    Status = "DOCKED"
	StatusInTransit Status = "IN_TRANSIT"
)

// Ship is the navigation-relevant projection of a ship aggregate.
// Exactly one of {Docked, InTransit} holds: when Docked,
// FromLocationID/ToLocationID/DepartedAtS/ArrivesAtS/TransferPath are
// all zero-valued.
type Ship struct {
	ID         string
	LocationID string // set iff Docked

	FromLocationID string
	ToLocationID   string
	DepartedAtS    float64
	ArrivesAtS     float64
	TransferPath   []string

	Parts  []parts.Part
	FuelKg float64
}

// Status derives the ship's navigation status from its persisted
// fields rather than storing it redundantly.
func (s Ship) Status() Status {
	if s.ToLocationID != "" {
		return StatusInTransit
	}
	return StatusDocked
}
