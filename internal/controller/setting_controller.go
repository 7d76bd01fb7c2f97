package controller

import (
	"english_station_backend/internal/model"
	"english_station_backend/internal/service"
	"english_station_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SettingController struct {
	SettingService *service.SettingService
}

func NewSettingController(settingService *service.SettingService) *SettingController {
	return &SettingController{SettingService: settingService}
}

// UpdateSettingsRequest 值可以是字符串、数字、布尔或对象
type UpdateSettingsRequest struct {
	Settings model.Settings `json:"settings" binding:"required" swaggertype:"object"`
}

// GetSettings godoc
// @Summary 站点设置
// @Tags 设置
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /settings [get]
func (c *SettingController) GetSettings(ctx *gin.Context) {
	settings, err := c.SettingService.All(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err, "Settings not found", "Failed to fetch settings")
		return
	}
	util.Success(ctx, settings)
}

// UpdateSettings godoc
// @Summary 更新站点设置
// @Tags 管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body UpdateSettingsRequest true "设置键值"
// @Success 200 {object} map[string]interface{}
// @Router /settings [post]
func (c *SettingController) UpdateSettings(ctx *gin.Context) {
	var req UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	settings, err := c.SettingService.Update(ctx.Request.Context(), req.Settings)
	if err != nil {
		util.HandleError(ctx, err, "Settings not found", "Failed to update settings")
		return
	}
	util.Success(ctx, settings)
}

// ReplaceSettings godoc
// @Summary 更新站点设置（管理后台）
// @Description 请求体直接为设置键值，无 settings 包裹
// @Tags 管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body map[string]interface{} true "设置键值"
// @Success 200 {object} map[string]interface{}
// @Router /admin/settings [put]
func (c *SettingController) ReplaceSettings(ctx *gin.Context) {
	var settings model.Settings
	if err := ctx.ShouldBindJSON(&settings); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	updated, err := c.SettingService.Update(ctx.Request.Context(), settings)
	if err != nil {
		util.HandleError(ctx, err, "Settings not found", "Failed to update settings")
		return
	}
	util.Success(ctx, updated)
}
