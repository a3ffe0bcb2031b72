package persistence

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/coldharbor-systems/orbital-sim/internal/domain/locationgraph"
)

// GormLocationGraphRepository implements locationgraph.Repository and
// routing.GraphSource over GORM.
type GormLocationGraphRepository struct {
	db *gorm.DB
}

func NewGormLocationGraphRepository(db *gorm.DB) *GormLocationGraphRepository {
	return &GormLocationGraphRepository{db: db}
}

func (r *GormLocationGraphRepository) CountLocations() (int, error) {
	var count int64
	if err := r.db.Model(&LocationModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *GormLocationGraphRepository) UpsertLocations(rows []locationgraph.Location) error {
	if len(rows) == 0 {
		return nil
	}
	models := make([]LocationModel, len(rows))
	for i, l := range rows {
		models[i] = LocationModel{
			ID: l.ID, Name: l.Name, ParentID: l.ParentID,
			IsGroup: l.IsGroup, SortOrder: l.SortOrder, X: l.X, Y: l.Y,
		}
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "parent_id", "is_group", "sort_order", "x", "y"}),
	}).Create(&models).Error
}

func (r *GormLocationGraphRepository) UpsertEdges(rows []locationgraph.Edge) error {
	if len(rows) == 0 {
		return nil
	}
	models := make([]TransferEdgeModel, len(rows))
	for i, e := range rows {
		models[i] = TransferEdgeModel{FromID: e.FromID, ToID: e.ToID, DvMS: e.DvMS, TofS: e.TofS}
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "from_id"}, {Name: "to_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"dv_m_s", "tof_s"}),
	}).Create(&models).Error
}

func (r *GormLocationGraphRepository) AllLocations() ([]locationgraph.Location, error) {
	var models []LocationModel
	if err := r.db.Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]locationgraph.Location, len(models))
	for i, m := range models {
		out[i] = locationgraph.Location{
			ID: m.ID, Name: m.Name, ParentID: m.ParentID,
			IsGroup: m.IsGroup, SortOrder: m.SortOrder, X: m.X, Y: m.Y,
		}
	}
	return out, nil
}

func (r *GormLocationGraphRepository) AllEdges() ([]locationgraph.Edge, error) {
	var models []TransferEdgeModel
	if err := r.db.Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]locationgraph.Edge, len(models))
	for i, m := range models {
		out[i] = locationgraph.Edge{FromID: m.FromID, ToID: m.ToID, DvMS: m.DvMS, TofS: m.TofS}
	}
	return out, nil
}

// NonGroupLocationIDs implements routing.GraphSource: ids of every
// leaf location that can host ships or inventory.
func (r *GormLocationGraphRepository) NonGroupLocationIDs() ([]string, error) {
	var ids []string
	if err := r.db.Model(&LocationModel{}).Where("is_group = ?", false).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
