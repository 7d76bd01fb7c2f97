package controller

import (
	"english_station_backend/internal/service"
	"english_station_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// ListProgress godoc
// @Summary 全部学习进度
// @Tags 管理
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} model.Progress
// @Router /progress [get]
func (c *ProgressController) ListProgress(ctx *gin.Context) {
	items, err := c.ProgressService.List(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err, "Progress not found", "Failed to fetch progress")
		return
	}
	util.Success(ctx, items)
}

// ListUserProgress godoc
// @Summary 用户学习进度
// @Tags 进度
// @Produce json
// @Security ApiKeyAuth
// @Param userId path string true "用户ID"
// @Success 200 {array} model.Progress
// @Router /progress/user/{userId} [get]
func (c *ProgressController) ListUserProgress(ctx *gin.Context) {
	userID := ctx.Param("userId")
	if !requireSelfOrAdmin(ctx, userID) {
		return
	}

	items, err := c.ProgressService.ListByUser(ctx.Request.Context(), userID)
	if err != nil {
		util.HandleError(ctx, err, "Progress not found", "Failed to fetch user progress")
		return
	}
	util.Success(ctx, items)
}

// ListLessonProgress godoc
// @Summary 课程学习进度
// @Tags 管理
// @Produce json
// @Security ApiKeyAuth
// @Param lessonId path int true "课程ID"
// @Success 200 {array} model.Progress
// @Router /progress/lesson/{lessonId} [get]
func (c *ProgressController) ListLessonProgress(ctx *gin.Context) {
	lessonID, ok := pathID(ctx, "lessonId")
	if !ok {
		return
	}

	items, err := c.ProgressService.ListByLesson(ctx.Request.Context(), lessonID)
	if err != nil {
		util.HandleError(ctx, err, "Progress not found", "Failed to fetch lesson progress")
		return
	}
	util.Success(ctx, items)
}

// UpsertProgress godoc
// @Summary 更新学习进度
// @Description 不存在时创建 (201)，已存在时覆盖 (200)
// @Tags 进度
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.ProgressInput true "进度"
// @Success 200 {object} model.Progress
// @Success 201 {object} model.Progress
// @Router /progress [post]
func (c *ProgressController) UpsertProgress(ctx *gin.Context) {
	var req service.ProgressInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	userID, ok := resolveUserID(ctx, req.UserID)
	if !ok {
		return
	}
	req.UserID = userID

	p, created, err := c.ProgressService.Upsert(ctx.Request.Context(), req)
	if err != nil {
		util.HandleError(ctx, err, "Progress not found", "Failed to update progress")
		return
	}
	if created {
		util.Created(ctx, p)
		return
	}
	util.Success(ctx, p)
}

// DeleteProgress godoc
// @Summary 删除学习进度
// @Tags 进度
// @Security ApiKeyAuth
// @Param id path string true "进度ID"
// @Success 204
// @Router /progress/{id} [delete]
func (c *ProgressController) DeleteProgress(ctx *gin.Context) {
	id := ctx.Param("id")
	p, err := c.ProgressService.Get(ctx.Request.Context(), id)
	if err != nil {
		util.HandleError(ctx, err, "Progress not found", "Failed to delete progress")
		return
	}
	// 只能删除自己的进度，管理员除外
	if !requireSelfOrAdmin(ctx, p.UserID) {
		return
	}

	if err := c.ProgressService.Delete(ctx.Request.Context(), id); err != nil {
		util.HandleError(ctx, err, "Progress not found", "Failed to delete progress")
		return
	}
	util.NoContent(ctx)
}
