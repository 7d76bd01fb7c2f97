package repository

import (
	"context"
	"english_station_backend/internal/model"
	"sort"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository struct {
	DB *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{DB: db}
}

func (r *SettingRepository) All(ctx context.Context) (model.Settings, error) {
	var rows []model.Setting
	if err := r.DB.WithContext(ctx).Order(clause.OrderByColumn{Column: clause.Column{Name: "key"}}).Find(&rows).Error; err != nil {
		return nil, translate(err)
	}

	settings := make(model.Settings, len(rows))
	for _, row := range rows {
		settings[row.Key] = row.Value
	}
	return settings, nil
}

// Upsert 在同一事务中写入全部键值
func (r *SettingRepository) Upsert(ctx context.Context, settings model.Settings) error {
	if len(settings) == 0 {
		return nil
	}

	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	now := time.Now()
	rows := make([]model.Setting, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, model.Setting{Key: k, Value: settings[k], UpdatedAt: now})
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&rows).Error
	})
	return translate(err)
}
