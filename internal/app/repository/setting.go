package repository

import (
	"novitatravel/internal/app/ds"

	"gorm.io/gorm/clause"
)

func (r *Repository) GetAllSettings() ([]ds.Setting, error) {
	var settings []ds.Setting
	err := r.db.Find(&settings).Error
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// UpsertSetting inserts the key or overwrites its value if it already
// exists.
func (r *Repository) UpsertSetting(key, value string) error {
	setting := ds.Setting{Key: key, Value: value}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"setting_value", "updated_at"}),
	}).Create(&setting).Error
}
