package service

import (
	"context"
	"english_station_backend/internal/model"
	"english_station_backend/internal/util"
	"errors"
	"strings"
)

type ProgressService struct {
	ProgressRepo ProgressStore
	LessonRepo   LessonStore
	UserRepo     UserStore
}

func NewProgressService(progressRepo ProgressStore, lessonRepo LessonStore, userRepo UserStore) *ProgressService {
	return &ProgressService{
		ProgressRepo: progressRepo,
		LessonRepo:   lessonRepo,
		UserRepo:     userRepo,
	}
}

type ProgressInput struct {
	UserID    string `json:"userId"`
	LessonID  uint   `json:"lessonId" binding:"required"`
	Completed bool   `json:"completed"`
	Progress  int    `json:"progress"`
}

func (s *ProgressService) List(ctx context.Context) ([]model.Progress, error) {
	return s.ProgressRepo.List(ctx)
}

func (s *ProgressService) ListByUser(ctx context.Context, userID string) ([]model.Progress, error) {
	return s.ProgressRepo.ListByUser(ctx, userID)
}

func (s *ProgressService) ListByLesson(ctx context.Context, lessonID uint) ([]model.Progress, error) {
	return s.ProgressRepo.ListByLesson(ctx, lessonID)
}

// Upsert 每个用户每节课只保留一条进度，返回值 created 表示是否新建
// 客户端可以在 progress=0 时标记 completed，这里不做状态约束
func (s *ProgressService) Upsert(ctx context.Context, input ProgressInput) (*model.Progress, bool, error) {
	if strings.TrimSpace(input.UserID) == "" {
		return nil, false, util.Invalid("userId is required")
	}
	if input.Progress < 0 || input.Progress > 100 {
		return nil, false, util.Invalid("progress must be between 0 and 100")
	}

	exists, err := s.LessonRepo.Exists(ctx, input.LessonID)
	if err != nil {
		return nil, false, err
	}
	if !exists {
		return nil, false, util.Invalid("lesson %d does not exist", input.LessonID)
	}
	if _, err := s.UserRepo.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, false, util.Invalid("user %s does not exist", input.UserID)
		}
		return nil, false, err
	}

	p := &model.Progress{
		UserID:    input.UserID,
		LessonID:  input.LessonID,
		Completed: input.Completed,
		Progress:  input.Progress,
	}
	created, err := s.ProgressRepo.Upsert(ctx, p)
	if err != nil {
		return nil, false, err
	}
	return p, created, nil
}

func (s *ProgressService) Get(ctx context.Context, id string) (*model.Progress, error) {
	return s.ProgressRepo.FindByID(ctx, id)
}

func (s *ProgressService) Delete(ctx context.Context, id string) error {
	return s.ProgressRepo.Delete(ctx, id)
}
