package persistence

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/coldharbor-systems/orbital-sim/internal/domain/inventory"
)

// GormInventoryRepository implements inventory.Repository over GORM.
type GormInventoryRepository struct {
	db *gorm.DB
}

func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

func toInventoryModel(s inventory.Stack) InventoryStackModel {
	return InventoryStackModel{
		LocationID: s.LocationID, StackType: string(s.StackType), StackKey: s.StackKey,
		ItemID: s.ItemID, Name: s.Name, Quantity: s.Quantity, MassKg: s.MassKg, VolumeM3: s.VolumeM3,
		PayloadJSON: s.PayloadJSON, UpdatedAtS: s.UpdatedAtS, UpdatedAt: time.Now().UTC(),
	}
}

func fromInventoryModel(m InventoryStackModel) inventory.Stack {
	return inventory.Stack{
		LocationID: m.LocationID, StackType: inventory.StackType(m.StackType), StackKey: m.StackKey,
		ItemID: m.ItemID, Name: m.Name, Quantity: m.Quantity, MassKg: m.MassKg, VolumeM3: m.VolumeM3,
		PayloadJSON: m.PayloadJSON, UpdatedAtS: m.UpdatedAtS,
	}
}

func (r *GormInventoryRepository) Get(ctx context.Context, locationID string, stackType inventory.StackType, stackKey string) (inventory.Stack, bool, error) {
	var m InventoryStackModel
	err := r.db.WithContext(ctx).
		Where("location_id = ? AND stack_type = ? AND stack_key = ?", locationID, string(stackType), stackKey).
		First(&m).Error
	if err == gorm.ErrRecordNotFound {
		return inventory.Stack{}, false, nil
	}
	if err != nil {
		return inventory.Stack{}, false, err
	}
	return fromInventoryModel(m), true, nil
}

func (r *GormInventoryRepository) Put(ctx context.Context, s inventory.Stack) error {
	m := toInventoryModel(s)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "location_id"}, {Name: "stack_type"}, {Name: "stack_key"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"item_id", "name", "quantity", "mass_kg", "volume_m3", "payload_json", "updated_at_s", "updated_at",
		}),
	}).Create(&m).Error
}

func (r *GormInventoryRepository) Delete(ctx context.Context, locationID string, stackType inventory.StackType, stackKey string) error {
	return r.db.WithContext(ctx).
		Where("location_id = ? AND stack_type = ? AND stack_key = ?", locationID, string(stackType), stackKey).
		Delete(&InventoryStackModel{}).Error
}

func (r *GormInventoryRepository) ListPartsByItemID(ctx context.Context, locationID, itemID string) ([]inventory.Stack, error) {
	var models []InventoryStackModel
	err := r.db.WithContext(ctx).
		Where("location_id = ? AND stack_type = ? AND item_id = ?", locationID, string(inventory.StackTypePart), itemID).
		Order("updated_at_s asc").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	out := make([]inventory.Stack, len(models))
	for i, m := range models {
		out[i] = fromInventoryModel(m)
	}
	return out, nil
}

func (r *GormInventoryRepository) ListAt(ctx context.Context, locationID string) ([]inventory.Stack, error) {
	var models []InventoryStackModel
	if err := r.db.WithContext(ctx).Where("location_id = ?", locationID).Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]inventory.Stack, len(models))
	for i, m := range models {
		out[i] = fromInventoryModel(m)
	}
	return out, nil
}
