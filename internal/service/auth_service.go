package service

import (
	"context"
	"english_station_backend/internal/config"
	"english_station_backend/internal/model"
	"english_station_backend/internal/util"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	UserRepo UserStore
	Cfg      *config.Config
}

func NewAuthService(userRepo UserStore, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=2,max=100"`
	Password string `json:"password" binding:"required,min=6"`
	Level    string `json:"level"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshInput struct {
	RefreshToken string `json:"refreshToken"`
}

// TokenPair 访问令牌与刷新令牌
type TokenPair struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// LoginResult 登录返回用户信息及令牌
type LoginResult struct {
	*model.User
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	username := strings.TrimSpace(input.Username)

	level := input.Level
	if level == "" {
		level = util.Levels[0]
	}
	if !util.IsValidLevel(level) {
		return nil, util.Invalid("level must be one of %s", strings.Join(util.Levels, ", "))
	}

	taken, err := s.UserRepo.ExistsByEmailOrUsername(ctx, email, username, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, util.ErrUserExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:    email,
		Username: username,
		Password: string(hashedPassword),
		Level:    level,
	}
	if err := s.UserRepo.Create(ctx, user); err != nil {
		if errors.Is(err, util.ErrConflict) {
			return nil, util.ErrUserExists
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := s.UserRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, util.ErrBadCredential
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, util.ErrBadCredential
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: user, Token: tokens.Token, RefreshToken: tokens.RefreshToken}, nil
}

// Refresh 校验刷新令牌并轮换，旧令牌随即失效
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, util.ErrBadRefresh
	}

	user, err := s.UserRepo.FindByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, util.ErrBadRefresh
		}
		return nil, err
	}
	return s.issueTokens(ctx, user)
}

func (s *AuthService) issueTokens(ctx context.Context, user *model.User) (*TokenPair, error) {
	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}

	refreshToken, err := util.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}
	if err := s.UserRepo.UpdateRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return nil, err
	}
	user.RefreshToken = refreshToken

	return &TokenPair{Token: token, RefreshToken: refreshToken}, nil
}
