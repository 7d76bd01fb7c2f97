package controller

import (
	"english_station_backend/internal/service"
	"english_station_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// ListUsers godoc
// @Summary 用户列表
// @Tags 管理
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} model.User
// @Router /users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	users, err := c.UserService.List(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err, "User not found", "Failed to fetch users")
		return
	}
	util.Success(ctx, users)
}

// GetUser godoc
// @Summary 用户详情
// @Description 附带课程进度与测验记录，仅本人或管理员可见
// @Tags 用户
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "用户ID"
// @Success 200 {object} model.UserDetail
// @Failure 404 {object} util.ErrorResponse
// @Router /users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	id := ctx.Param("id")
	if !requireSelfOrAdmin(ctx, id) {
		return
	}

	detail, err := c.UserService.Get(ctx.Request.Context(), id)
	if err != nil {
		util.HandleError(ctx, err, "User not found", "Failed to fetch user")
		return
	}
	util.Success(ctx, detail)
}

// UpdateUser godoc
// @Summary 更新用户
// @Tags 用户
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "用户ID"
// @Param body body service.UpdateUserInput true "更新字段"
// @Success 200 {object} model.User
// @Failure 409 {object} util.ErrorResponse
// @Router /users/{id} [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id := ctx.Param("id")
	if !requireSelfOrAdmin(ctx, id) {
		return
	}

	var req service.UpdateUserInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.Update(ctx.Request.Context(), id, req)
	if err != nil {
		util.HandleError(ctx, err, "User not found", "Failed to update user")
		return
	}
	util.Success(ctx, user)
}

// DeleteUser godoc
// @Summary 删除用户
// @Tags 管理
// @Security ApiKeyAuth
// @Param id path string true "用户ID"
// @Success 204
// @Router /users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	if err := c.UserService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		util.HandleError(ctx, err, "User not found", "Failed to delete user")
		return
	}
	util.NoContent(ctx)
}

// PromoteUser godoc
// @Summary 设为管理员
// @Tags 管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "用户ID"
// @Success 200 {object} model.User
// @Router /admin/users/{id}/promote [put]
func (c *UserController) PromoteUser(ctx *gin.Context) {
	c.setAdmin(ctx, true)
}

// DemoteUser godoc
// @Summary 取消管理员
// @Tags 管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "用户ID"
// @Success 200 {object} model.User
// @Router /admin/users/{id}/demote [put]
func (c *UserController) DemoteUser(ctx *gin.Context) {
	c.setAdmin(ctx, false)
}

func (c *UserController) setAdmin(ctx *gin.Context, isAdmin bool) {
	user, err := c.UserService.SetAdmin(ctx.Request.Context(), ctx.Param("id"), isAdmin)
	if err != nil {
		util.HandleError(ctx, err, "User not found", "Failed to update user role")
		return
	}
	util.Success(ctx, user)
}
