package persistence

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/coldharbor-systems/orbital-sim/internal/domain/parts"
	"github.com/coldharbor-systems/orbital-sim/internal/domain/transit"
)

// GormTransitRepository implements transit.Repository over GORM.
type GormTransitRepository struct {
	db *gorm.DB
}

func NewGormTransitRepository(db *gorm.DB) *GormTransitRepository {
	return &GormTransitRepository{db: db}
}

func shipToModel(s transit.Ship) (ShipModel, error) {
	partsJSON, err := json.Marshal(s.Parts)
	if err != nil {
		return ShipModel{}, err
	}
	pathJSON, err := json.Marshal(s.TransferPath)
	if err != nil {
		return ShipModel{}, err
	}
	return ShipModel{
		ID: s.ID, LocationID: s.LocationID,
		FromLocationID: s.FromLocationID, ToLocationID: s.ToLocationID,
		DepartedAtS: s.DepartedAtS, ArrivesAtS: s.ArrivesAtS,
		TransferPathJSON: string(pathJSON), PartsJSON: string(partsJSON), FuelKg: s.FuelKg,
	}, nil
}

func modelToShip(m ShipModel) (transit.Ship, error) {
	var ps []parts.Part
	if m.PartsJSON != "" {
		if err := json.Unmarshal([]byte(m.PartsJSON), &ps); err != nil {
			return transit.Ship{}, err
		}
	}
	var path []string
	if m.TransferPathJSON != "" {
		if err := json.Unmarshal([]byte(m.TransferPathJSON), &path); err != nil {
			return transit.Ship{}, err
		}
	}
	return transit.Ship{
		ID: m.ID, LocationID: m.LocationID,
		FromLocationID: m.FromLocationID, ToLocationID: m.ToLocationID,
		DepartedAtS: m.DepartedAtS, ArrivesAtS: m.ArrivesAtS,
		TransferPath: path, Parts: ps, FuelKg: m.FuelKg,
	}, nil
}

func (r *GormTransitRepository) Get(id string) (transit.Ship, bool, error) {
	var m ShipModel
	err := r.db.Where("id = ?", id).First(&m).Error
	if err == gorm.ErrRecordNotFound {
		return transit.Ship{}, false, nil
	}
	if err != nil {
		return transit.Ship{}, false, err
	}
	s, err := modelToShip(m)
	return s, err == nil, err
}

func (r *GormTransitRepository) Save(s transit.Ship) error {
	m, err := shipToModel(s)
	if err != nil {
		return err
	}
	return r.db.Save(&m).Error
}

// TestShipIDPrefix marks ship rows left over from development fixtures
// and ad-hoc testing, purged at startup before the baseline shipyard
// ship is ensured.
const TestShipIDPrefix = "test-"

// PurgeTestShips deletes every ship row whose id carries
// TestShipIDPrefix and returns how many rows were removed.
func (r *GormTransitRepository) PurgeTestShips() (int, error) {
	res := r.db.Where("id LIKE ?", TestShipIDPrefix+"%").Delete(&ShipModel{})
	if res.Error != nil {
		return 0, res.Error
	}
	return int(res.RowsAffected), nil
}

// SettleArrivals performs the bulk promote-on-arrival update: every
// ship whose arrival time is due is docked at its destination and its
// in-transit fields cleared in a single statement.
func (r *GormTransitRepository) SettleArrivals(now float64) ([]string, error) {
	var due []ShipModel
	if err := r.db.Where("arrives_at_s > 0 AND arrives_at_s <= ?", now).Find(&due).Error; err != nil {
		return nil, err
	}
	if len(due) == 0 {
		return nil, nil
	}

	ids := make([]string, len(due))
	for i, m := range due {
		ids[i] = m.ID
	}

	err := r.db.Model(&ShipModel{}).
		Where("arrives_at_s > 0 AND arrives_at_s <= ?", now).
		Updates(map[string]any{
			"location_id":        gorm.Expr("to_location_id"),
			"from_location_id":   "",
			"to_location_id":     "",
			"departed_at_s":      0,
			"arrives_at_s":       0,
			"transfer_path_json": "[]",
		}).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
