package repository

import (
	"context"
	"encoding/json"
	"english_station_backend/internal/model"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	settingsCacheKey = "settings:all"
	settingsCacheTTL = 10 * time.Minute
)

// SettingCache 将站点设置整体缓存在 Redis 中
type SettingCache struct {
	Redis *redis.Client
	TTL   time.Duration
}

func NewSettingCache(rdb *redis.Client) *SettingCache {
	return &SettingCache{Redis: rdb, TTL: settingsCacheTTL}
}

// Get 返回缓存的设置，未命中时 ok 为 false
func (c *SettingCache) Get(ctx context.Context) (model.Settings, bool, error) {
	val, err := c.Redis.Get(ctx, settingsCacheKey).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var settings model.Settings
	if err := json.Unmarshal([]byte(val), &settings); err != nil {
		return nil, false, err
	}
	return settings, true, nil
}

func (c *SettingCache) Set(ctx context.Context, settings model.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return c.Redis.Set(ctx, settingsCacheKey, data, c.TTL).Err()
}

func (c *SettingCache) Invalidate(ctx context.Context) error {
	return c.Redis.Del(ctx, settingsCacheKey).Err()
}
