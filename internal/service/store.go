package service

import (
	"context"
	"english_station_backend/internal/model"
)

// 以下接口由 repository 包中的 gorm 实现满足，测试中使用内存实现

type LessonStore interface {
	List(ctx context.Context) ([]model.Lesson, error)
	FindByID(ctx context.Context, id uint) (*model.Lesson, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, lesson *model.Lesson) error
	Update(ctx context.Context, lesson *model.Lesson) error
	Delete(ctx context.Context, id uint) error
}

type VocabularyStore interface {
	ListByLesson(ctx context.Context, lessonID uint) ([]model.Vocabulary, error)
	Create(ctx context.Context, item *model.Vocabulary) error
	Delete(ctx context.Context, id uint) error
}

type QuizStore interface {
	List(ctx context.Context) ([]model.Quiz, error)
	FindByID(ctx context.Context, id uint) (*model.Quiz, error)
	Create(ctx context.Context, quiz *model.Quiz) error
	Replace(ctx context.Context, quiz *model.Quiz) error
	Delete(ctx context.Context, id uint) error
}

type QuizResultStore interface {
	Create(ctx context.Context, result *model.QuizResult) error
	ListByUser(ctx context.Context, userID string) ([]model.QuizResult, error)
}

type ProgressStore interface {
	List(ctx context.Context) ([]model.Progress, error)
	ListByUser(ctx context.Context, userID string) ([]model.Progress, error)
	ListByLesson(ctx context.Context, lessonID uint) ([]model.Progress, error)
	FindByID(ctx context.Context, id string) (*model.Progress, error)
	Upsert(ctx context.Context, p *model.Progress) (bool, error)
	Delete(ctx context.Context, id string) error
}

type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByRefreshToken(ctx context.Context, token string) (*model.User, error)
	ExistsByEmailOrUsername(ctx context.Context, email, username, excludeID string) (bool, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, user *model.User) error
	UpdateRefreshToken(ctx context.Context, userID, token string) error
	SetAdmin(ctx context.Context, userID string, isAdmin bool) error
	Delete(ctx context.Context, id string) error
}

type SettingStore interface {
	All(ctx context.Context) (model.Settings, error)
	Upsert(ctx context.Context, settings model.Settings) error
}

type SettingCache interface {
	Get(ctx context.Context) (model.Settings, bool, error)
	Set(ctx context.Context, settings model.Settings) error
	Invalidate(ctx context.Context) error
}
