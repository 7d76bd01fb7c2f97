package service

import (
	"context"
	"english_station_backend/internal/model"
	"english_station_backend/internal/util"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	UserRepo     UserStore
	ProgressRepo ProgressStore
	ResultRepo   QuizResultStore
}

func NewUserService(userRepo UserStore, progressRepo ProgressStore, resultRepo QuizResultStore) *UserService {
	return &UserService{
		UserRepo:     userRepo,
		ProgressRepo: progressRepo,
		ResultRepo:   resultRepo,
	}
}

// UpdateUserInput 仅更新非空字段
type UpdateUserInput struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Username *string `json:"username" binding:"omitempty,min=2,max=100"`
	Password *string `json:"password" binding:"omitempty,min=6"`
	Level    *string `json:"level"`
	Progress *int    `json:"progress" binding:"omitempty,min=0"`
	Streak   *int    `json:"streak" binding:"omitempty,min=0"`
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.UserRepo.List(ctx)
}

// Get 返回用户及其课程进度、测验记录
func (s *UserService) Get(ctx context.Context, id string) (*model.UserDetail, error) {
	user, err := s.UserRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	progress, err := s.ProgressRepo.ListByUser(ctx, id)
	if err != nil {
		return nil, err
	}
	results, err := s.ResultRepo.ListByUser(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.UserDetail{
		User:           *user,
		LessonProgress: progress,
		QuizResults:    results,
	}, nil
}

func (s *UserService) Update(ctx context.Context, id string, input UpdateUserInput) (*model.User, error) {
	user, err := s.UserRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	email, username := user.Email, user.Username
	if input.Email != nil {
		email = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if input.Username != nil {
		username = strings.TrimSpace(*input.Username)
	}
	if email != user.Email || username != user.Username {
		taken, err := s.UserRepo.ExistsByEmailOrUsername(ctx, email, username, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, util.ErrUserExists
		}
	}
	user.Email, user.Username = email, username

	if input.Level != nil {
		if !util.IsValidLevel(*input.Level) {
			return nil, util.Invalid("level must be one of %s", strings.Join(util.Levels, ", "))
		}
		user.Level = *input.Level
	}
	if input.Progress != nil {
		user.Progress = *input.Progress
	}
	if input.Streak != nil {
		user.Streak = *input.Streak
	}
	if input.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}

	if err := s.UserRepo.Update(ctx, user); err != nil {
		if errors.Is(err, util.ErrConflict) {
			return nil, util.ErrUserExists
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.UserRepo.Delete(ctx, id)
}

// SetAdmin 提升或撤销管理员权限
func (s *UserService) SetAdmin(ctx context.Context, id string, isAdmin bool) (*model.User, error) {
	user, err := s.UserRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.UserRepo.SetAdmin(ctx, id, isAdmin); err != nil {
		return nil, err
	}
	user.IsAdmin = isAdmin
	return user, nil
}
