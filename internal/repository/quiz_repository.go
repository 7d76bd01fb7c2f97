package repository

import (
	"context"
	"english_station_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func orderedQuestions(db *gorm.DB) *gorm.DB {
	return db.Order(clause.OrderBy{Columns: []clause.OrderByColumn{
		{Column: clause.Column{Name: "order"}},
		{Column: clause.Column{Name: "id"}},
	}})
}

func orderedAnswers(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

// withContent 预加载课程、题目与答案
func withContent(db *gorm.DB) *gorm.DB {
	return db.Preload("Lesson").
		Preload("Questions", orderedQuestions).
		Preload("Questions.Answers", orderedAnswers)
}

func (r *QuizRepository) List(ctx context.Context) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := withContent(r.DB.WithContext(ctx)).Order("created_at DESC").Find(&quizzes).Error
	return quizzes, translate(err)
}

func (r *QuizRepository) FindByID(ctx context.Context, id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := withContent(r.DB.WithContext(ctx)).First(&quiz, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &quiz, nil
}

// Create 在一个事务中写入测验及其题目、答案
func (r *QuizRepository) Create(ctx context.Context, quiz *model.Quiz) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Lesson").Create(quiz).Error
	})
	return translate(err)
}

// Replace 更新测验字段并整体替换题目与答案，全部在同一事务内完成
func (r *QuizRepository) Replace(ctx context.Context, quiz *model.Quiz) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Quiz{}).Where("id = ?", quiz.ID).
			Select("title", "description", "lesson_id", "time_limit", "updated_at").
			Updates(map[string]interface{}{
				"title":       quiz.Title,
				"description": quiz.Description,
				"lesson_id":   quiz.LessonID,
				"time_limit":  quiz.TimeLimit,
				"updated_at":  tx.NowFunc(),
			})
		if res.Error != nil {
			return res.Error
		}

		var count int64
		if err := tx.Model(&model.Quiz{}).Where("id = ?", quiz.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}

		quizIDs := func() *gorm.DB {
			return tx.Model(&model.Quiz{}).Select("id").Where("id = ?", quiz.ID)
		}
		if err := deleteQuizContent(tx, quizIDs); err != nil {
			return err
		}

		for i := range quiz.Questions {
			quiz.Questions[i].ID = 0
			quiz.Questions[i].QuizID = quiz.ID
			for j := range quiz.Questions[i].Answers {
				quiz.Questions[i].Answers[j].ID = 0
			}
		}
		if len(quiz.Questions) == 0 {
			return nil
		}
		return tx.Create(&quiz.Questions).Error
	})
	return translate(err)
}

// Delete 删除测验、题目、答案及测验结果
func (r *QuizRepository) Delete(ctx context.Context, id uint) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		quizIDs := func() *gorm.DB {
			return tx.Model(&model.Quiz{}).Select("id").Where("id = ?", id)
		}
		if err := deleteQuizContent(tx, quizIDs); err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", id).Delete(&model.QuizResult{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&model.Quiz{}, id)
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

// deleteQuizContent 删除 quizIDs 子查询所选测验下的全部答案与题目
func deleteQuizContent(tx *gorm.DB, quizIDs func() *gorm.DB) error {
	questionIDs := tx.Model(&model.Question{}).Select("id").Where("quiz_id IN (?)", quizIDs())
	if err := tx.Where("question_id IN (?)", questionIDs).Delete(&model.Answer{}).Error; err != nil {
		return err
	}
	return tx.Where("quiz_id IN (?)", quizIDs()).Delete(&model.Question{}).Error
}

type QuizResultRepository struct {
	DB *gorm.DB
}

func NewQuizResultRepository(db *gorm.DB) *QuizResultRepository {
	return &QuizResultRepository{DB: db}
}

func (r *QuizResultRepository) Create(ctx context.Context, result *model.QuizResult) error {
	return translate(r.DB.WithContext(ctx).Omit(clause.Associations).Create(result).Error)
}

// ListByUser 按时间倒序返回用户的测验结果，附带测验与所属课程
func (r *QuizResultRepository) ListByUser(ctx context.Context, userID string) ([]model.QuizResult, error) {
	var results []model.QuizResult
	err := r.DB.WithContext(ctx).
		Preload("Quiz").
		Preload("Quiz.Lesson").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error
	return results, translate(err)
}
