package controller

import (
	"english_station_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// pathID 解析路径中的自增 ID，失败时直接返回 400
func pathID(ctx *gin.Context, name string) (uint, bool) {
	id, err := util.ParseID(ctx.Param(name))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return 0, false
	}
	return id, true
}

// resolveUserID 请求体未携带 userId 时使用当前登录用户
// 非管理员只能代表自己提交
func resolveUserID(ctx *gin.Context, requested string) (string, bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return "", false
	}
	if requested == "" {
		return claims.UserID, true
	}
	if requested != claims.UserID && !claims.IsAdmin {
		util.Forbidden(ctx)
		return "", false
	}
	return requested, true
}

// requireSelfOrAdmin 校验当前用户能否访问 userID 的数据
func requireSelfOrAdmin(ctx *gin.Context, userID string) bool {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return false
	}
	if claims.UserID != userID && !claims.IsAdmin {
		util.Forbidden(ctx)
		return false
	}
	return true
}
