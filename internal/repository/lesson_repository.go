package repository

import (
	"context"
	"english_station_backend/internal/model"
	"english_station_backend/internal/util"

	"gorm.io/gorm"
)

type LessonRepository struct {
	DB *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{DB: db}
}

func (r *LessonRepository) List(ctx context.Context) ([]model.Lesson, error) {
	var lessons []model.Lesson
	err := r.DB.WithContext(ctx).Order("created_at ASC").Find(&lessons).Error
	return lessons, translate(err)
}

func (r *LessonRepository) FindByID(ctx context.Context, id uint) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.WithContext(ctx).Preload("Vocabulary").First(&lesson, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &lesson, nil
}

func (r *LessonRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Lesson{}).Where("id = ?", id).Count(&count).Error
	return count > 0, translate(err)
}

func (r *LessonRepository) Create(ctx context.Context, lesson *model.Lesson) error {
	return translate(r.DB.WithContext(ctx).Create(lesson).Error)
}

func (r *LessonRepository) Update(ctx context.Context, lesson *model.Lesson) error {
	return translate(r.DB.WithContext(ctx).Model(lesson).
		Select("title", "description", "content", "level").
		Updates(lesson).Error)
}

// Delete 删除课程及其词汇、测验、题目与答案
func (r *LessonRepository) Delete(ctx context.Context, id uint) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		quizIDs := func() *gorm.DB {
			return tx.Model(&model.Quiz{}).Select("id").Where("lesson_id = ?", id)
		}
		if err := deleteQuizContent(tx, quizIDs); err != nil {
			return err
		}
		if err := tx.Where("quiz_id IN (?)", quizIDs()).Delete(&model.QuizResult{}).Error; err != nil {
			return err
		}
		if err := tx.Where("lesson_id = ?", id).Delete(&model.Quiz{}).Error; err != nil {
			return err
		}
		if err := tx.Where("lesson_id = ?", id).Delete(&model.Vocabulary{}).Error; err != nil {
			return err
		}
		if err := tx.Where("lesson_id = ?", id).Delete(&model.Progress{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&model.Lesson{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return translate(err)
}

type VocabularyRepository struct {
	DB *gorm.DB
}

func NewVocabularyRepository(db *gorm.DB) *VocabularyRepository {
	return &VocabularyRepository{DB: db}
}

func (r *VocabularyRepository) ListByLesson(ctx context.Context, lessonID uint) ([]model.Vocabulary, error) {
	var items []model.Vocabulary
	err := r.DB.WithContext(ctx).Where("lesson_id = ?", lessonID).Order("id ASC").Find(&items).Error
	return items, translate(err)
}

func (r *VocabularyRepository) Create(ctx context.Context, item *model.Vocabulary) error {
	return translate(r.DB.WithContext(ctx).Create(item).Error)
}

func (r *VocabularyRepository) Delete(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&model.Vocabulary{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}
