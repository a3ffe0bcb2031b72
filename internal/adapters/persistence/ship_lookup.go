package persistence

import (
	"gorm.io/gorm"

	"github.com/coldharbor-systems/orbital-sim/internal/domain/catalog"
)

// GormShipLookup implements prospecting.ShipLookup over GORM, reusing
// the ships table the transit repository writes.
type GormShipLookup struct {
	db      *gorm.DB
	transit *GormTransitRepository
}

func NewGormShipLookup(db *gorm.DB) *GormShipLookup {
	return &GormShipLookup{db: db, transit: NewGormTransitRepository(db)}
}

func (l *GormShipLookup) LocationOf(shipID string) (string, bool, error) {
	s, found, err := l.transit.Get(shipID)
	if err != nil || !found {
		return "", found, err
	}
	return s.LocationID, true, nil
}

func (l *GormShipLookup) HasRobonaut(shipID string) (bool, error) {
	s, found, err := l.transit.Get(shipID)
	if err != nil || !found {
		return false, err
	}
	for _, p := range s.Parts {
		if p.Category == catalog.CategoryRobonaut {
			return true, nil
		}
	}
	return false, nil
}
