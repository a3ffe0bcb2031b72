package persistence

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func upsertMeta(db *gorm.DB, key, value string) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&MetaModel{Key: key, Value: value}).Error
}

func getMeta(db *gorm.DB, key string) (string, bool, error) {
	var m MetaModel
	err := db.Where("key = ?", key).First(&m).Error
	if err == gorm.ErrRecordNotFound {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return m.Value, true, nil
}
