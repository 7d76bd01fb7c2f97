package repository

import (
	"context"
	"english_station_backend/internal/model"
	"english_station_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) List(ctx context.Context) ([]model.Progress, error) {
	var items []model.Progress
	err := r.DB.WithContext(ctx).
		Preload("User").
		Preload("Lesson").
		Order("updated_at DESC").
		Find(&items).Error
	return items, translate(err)
}

func (r *ProgressRepository) ListByUser(ctx context.Context, userID string) ([]model.Progress, error) {
	var items []model.Progress
	err := r.DB.WithContext(ctx).
		Preload("Lesson").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&items).Error
	return items, translate(err)
}

func (r *ProgressRepository) ListByLesson(ctx context.Context, lessonID uint) ([]model.Progress, error) {
	var items []model.Progress
	err := r.DB.WithContext(ctx).
		Preload("User").
		Where("lesson_id = ?", lessonID).
		Order("updated_at DESC").
		Find(&items).Error
	return items, translate(err)
}

func (r *ProgressRepository) FindByID(ctx context.Context, id string) (*model.Progress, error) {
	var p model.Progress
	if err := r.DB.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// Upsert 按 (user_id, lesson_id) 创建或更新进度，返回是否新建
// 并发插入导致唯一键冲突时重试一次，第二次会走更新分支
func (r *ProgressRepository) Upsert(ctx context.Context, p *model.Progress) (bool, error) {
	created, err := r.upsert(ctx, p)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		created, err = r.upsert(ctx, p)
	}
	return created, translate(err)
}

func (r *ProgressRepository) upsert(ctx context.Context, p *model.Progress) (bool, error) {
	created := false
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Progress
		err := tx.Where("user_id = ? AND lesson_id = ?", p.UserID, p.LessonID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			p.ID = ""
			if err := tx.Omit("User", "Lesson").Create(p).Error; err != nil {
				return err
			}
			created = true
			return nil
		}
		if err != nil {
			return err
		}

		existing.Completed = p.Completed
		existing.Progress = p.Progress
		if err := tx.Model(&existing).Select("completed", "progress", "updated_at").Updates(&existing).Error; err != nil {
			return err
		}
		*p = existing
		return nil
	})
	return created, err
}

func (r *ProgressRepository) Delete(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&model.Progress{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}
