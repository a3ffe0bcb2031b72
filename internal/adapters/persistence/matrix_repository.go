package persistence

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/coldharbor-systems/orbital-sim/internal/domain/routing"
)

const matrixEdgesHashMetaKey = "edges_hash"

// GormMatrixRepository implements routing.MatrixRepository over GORM,
// storing the content hash used for invalidation in the shared meta
// table alongside the matrix rows themselves.
type GormMatrixRepository struct {
	db *gorm.DB
}

func NewGormMatrixRepository(db *gorm.DB) *GormMatrixRepository {
	return &GormMatrixRepository{db: db}
}

func (r *GormMatrixRepository) ReplaceMatrix(entries []routing.MatrixEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&TransferMatrixEntryModel{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		models := make([]TransferMatrixEntryModel, len(entries))
		for i, e := range entries {
			pathJSON, err := json.Marshal(e.Path)
			if err != nil {
				return err
			}
			models[i] = TransferMatrixEntryModel{
				FromID: e.FromID, ToID: e.ToID, DvMS: e.DvMS, TofS: e.TofS, PathJSON: string(pathJSON),
			}
		}
		return tx.CreateInBatches(&models, 200).Error
	})
}

func (r *GormMatrixRepository) MatrixCount() (int, error) {
	var count int64
	if err := r.db.Model(&TransferMatrixEntryModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *GormMatrixRepository) Get(fromID, toID string) (routing.MatrixEntry, bool, error) {
	var m TransferMatrixEntryModel
	err := r.db.Where("from_id = ? AND to_id = ?", fromID, toID).First(&m).Error
	if err == gorm.ErrRecordNotFound {
		return routing.MatrixEntry{}, false, nil
	}
	if err != nil {
		return routing.MatrixEntry{}, false, err
	}
	var path []string
	if err := json.Unmarshal([]byte(m.PathJSON), &path); err != nil {
		return routing.MatrixEntry{}, false, err
	}
	return routing.MatrixEntry{FromID: m.FromID, ToID: m.ToID, DvMS: m.DvMS, TofS: m.TofS, Path: path}, true, nil
}

func (r *GormMatrixRepository) StoredEdgesHash() (string, bool, error) {
	var m MetaModel
	err := r.db.Where("key = ?", matrixEdgesHashMetaKey).First(&m).Error
	if err == gorm.ErrRecordNotFound {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return m.Value, true, nil
}

func (r *GormMatrixRepository) SetStoredEdgesHash(hash string) error {
	return upsertMeta(r.db, matrixEdgesHashMetaKey, hash)
}
