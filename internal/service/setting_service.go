package service

import (
	"context"
	"english_station_backend/internal/model"
	"english_station_backend/internal/util"
	"english_station_backend/pkg/logger"
	"strings"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type SettingService struct {
	SettingRepo SettingStore
	Cache       SettingCache // Redis 未启用时为 nil
}

func NewSettingService(settingRepo SettingStore, cache SettingCache) *SettingService {
	return &SettingService{
		SettingRepo: settingRepo,
		Cache:       cache,
	}
}

// All 优先读取缓存，缓存异常时回源数据库
func (s *SettingService) All(ctx context.Context) (model.Settings, error) {
	if s.Cache != nil {
		settings, ok, err := s.Cache.Get(ctx)
		if err != nil {
			logger.Log.Warn("Settings cache read failed", zap.Error(err))
		} else if ok {
			return settings, nil
		}
	}

	settings, err := s.SettingRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, settings); err != nil {
			logger.Log.Warn("Settings cache write failed", zap.Error(err))
		}
	}
	return settings, nil
}

func (s *SettingService) Update(ctx context.Context, settings model.Settings) (model.Settings, error) {
	if len(settings) == 0 {
		return nil, util.Invalid("settings must not be empty")
	}
	for k, v := range settings {
		if strings.TrimSpace(k) == "" {
			return nil, util.Invalid("setting key must not be empty")
		}
		if len(v) == 0 {
			settings[k] = datatypes.JSON("null")
		}
	}

	if err := s.SettingRepo.Upsert(ctx, settings); err != nil {
		return nil, err
	}
	s.Invalidate(ctx)
	return s.All(ctx)
}

func (s *SettingService) Invalidate(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Invalidate(ctx); err != nil {
		logger.Log.Warn("Settings cache invalidate failed", zap.Error(err))
	}
}
