package controller

import (
	"english_station_backend/internal/service"
	"english_station_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// Register godoc
// @Summary 注册新用户
// @Tags 用户
// @Accept json
// @Produce json
// @Param body body service.RegisterInput true "注册信息"
// @Success 201 {object} model.User
// @Failure 400 {object} util.ErrorResponse
// @Failure 409 {object} util.ErrorResponse "邮箱或用户名已存在"
// @Router /users [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req service.RegisterInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.AuthService.Register(ctx.Request.Context(), req)
	if err != nil {
		util.HandleError(ctx, err, "User not found", "Failed to create user")
		return
	}
	util.Created(ctx, user)
}

// Login godoc
// @Summary 用户登录
// @Tags 用户
// @Accept json
// @Produce json
// @Param body body service.LoginInput true "登录信息"
// @Success 200 {object} service.LoginResult
// @Failure 401 {object} util.ErrorResponse "邮箱或密码错误"
// @Router /users/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req service.LoginInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	res, err := c.AuthService.Login(ctx.Request.Context(), req)
	if err != nil {
		util.HandleError(ctx, err, "User not found", "Login failed")
		return
	}
	util.Success(ctx, res)
}

// RefreshToken godoc
// @Summary 刷新令牌
// @Description 旧的刷新令牌在成功后失效
// @Tags 用户
// @Accept json
// @Produce json
// @Param body body service.RefreshInput true "刷新令牌"
// @Success 200 {object} service.TokenPair
// @Failure 401 {object} util.ErrorResponse
// @Router /users/refresh-token [post]
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var req service.RefreshInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	pair, err := c.AuthService.Refresh(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		util.HandleError(ctx, err, "User not found", "Token refresh failed")
		return
	}
	util.Success(ctx, pair)
}
