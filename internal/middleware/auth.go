package middleware

import (
	"context"
	"english_station_backend/internal/config"
	"english_station_backend/internal/model"
	"english_station_backend/internal/util"
	"english_station_backend/pkg/logger"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
}

// UserLookup 按 ID 读取当前用户
type UserLookup interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
}

// AuthMiddleware 校验令牌后重新读取用户，已删除的用户返回 401，
// 管理员标记以数据库为准，降级立即生效
func AuthMiddleware(cfg *config.Config, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			logger.Log.Debug("JWT解析错误", zap.Error(err))
			util.Unauthorized(c)
			c.Abort()
			return
		}

		user, err := users.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, util.ErrNotFound) {
				util.Unauthorized(c)
			} else {
				util.HandleError(c, err, "User not found", "Failed to verify user")
			}
			c.Abort()
			return
		}
		claims.IsAdmin = user.IsAdmin

		c.Set("user", claims)
		c.Next()
	}
}

// TryAuthMiddleware 可选认证，令牌有效时写入用户信息，否则按游客处理
func TryAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := bearerToken(c); tokenString != "" {
			if claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret); err == nil {
				c.Set("user", claims)
			}
		}
		c.Next()
	}
}

// AdminMiddleware 需在 AuthMiddleware 之后使用
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		if user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}
		if !user.IsAdmin {
			util.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
