package controller

import (
	"english_station_backend/internal/service"
	"english_station_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LessonController struct {
	LessonService *service.LessonService
}

func NewLessonController(lessonService *service.LessonService) *LessonController {
	return &LessonController{LessonService: lessonService}
}

// ListLessons godoc
// @Summary 课程列表
// @Tags 课程
// @Produce json
// @Success 200 {array} model.Lesson
// @Router /lessons [get]
func (c *LessonController) ListLessons(ctx *gin.Context) {
	lessons, err := c.LessonService.List(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err, "Lesson not found", "Failed to fetch lessons")
		return
	}
	util.Success(ctx, lessons)
}

// GetLesson godoc
// @Summary 课程详情
// @Description 包含词汇表
// @Tags 课程
// @Produce json
// @Param id path int true "课程ID"
// @Success 200 {object} model.Lesson
// @Failure 404 {object} util.ErrorResponse
// @Router /lessons/{id} [get]
func (c *LessonController) GetLesson(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	lesson, err := c.LessonService.Get(ctx.Request.Context(), id)
	if err != nil {
		util.HandleError(ctx, err, "Lesson not found", "Failed to fetch lesson")
		return
	}
	util.Success(ctx, lesson)
}

// CreateLesson godoc
// @Summary 创建课程
// @Tags 管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.LessonInput true "课程信息"
// @Success 201 {object} model.Lesson
// @Failure 400 {object} util.ErrorResponse
// @Router /lessons [post]
func (c *LessonController) CreateLesson(ctx *gin.Context) {
	var req service.LessonInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.LessonService.Create(ctx.Request.Context(), req)
	if err != nil {
		util.HandleError(ctx, err, "Lesson not found", "Failed to create lesson")
		return
	}
	util.Created(ctx, lesson)
}

// UpdateLesson godoc
// @Summary 更新课程
// @Tags 管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "课程ID"
// @Param body body service.LessonInput true "课程信息"
// @Success 200 {object} model.Lesson
// @Failure 404 {object} util.ErrorResponse
// @Router /lessons/{id} [put]
func (c *LessonController) UpdateLesson(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req service.LessonInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.LessonService.Update(ctx.Request.Context(), id, req)
	if err != nil {
		util.HandleError(ctx, err, "Lesson not found", "Failed to update lesson")
		return
	}
	util.Success(ctx, lesson)
}

// DeleteLesson godoc
// @Summary 删除课程
// @Description 同时删除词汇、测验、题目与答案
// @Tags 管理
// @Security ApiKeyAuth
// @Param id path int true "课程ID"
// @Success 204
// @Router /lessons/{id} [delete]
func (c *LessonController) DeleteLesson(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.LessonService.Delete(ctx.Request.Context(), id); err != nil {
		util.HandleError(ctx, err, "Lesson not found", "Failed to delete lesson")
		return
	}
	util.NoContent(ctx)
}

// ListVocabulary godoc
// @Summary 课程词汇
// @Tags 课程
// @Produce json
// @Param id path int true "课程ID"
// @Success 200 {array} model.Vocabulary
// @Router /lessons/{id}/vocabulary [get]
func (c *LessonController) ListVocabulary(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	items, err := c.LessonService.ListVocabulary(ctx.Request.Context(), id)
	if err != nil {
		util.HandleError(ctx, err, "Lesson not found", "Failed to fetch vocabulary")
		return
	}
	util.Success(ctx, items)
}

// AddVocabulary godoc
// @Summary 添加词汇
// @Tags 管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "课程ID"
// @Param body body service.VocabularyInput true "词汇"
// @Success 201 {object} model.Vocabulary
// @Router /lessons/{id}/vocabulary [post]
func (c *LessonController) AddVocabulary(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req service.VocabularyInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	item, err := c.LessonService.AddVocabulary(ctx.Request.Context(), id, req)
	if err != nil {
		util.HandleError(ctx, err, "Lesson not found", "Failed to add vocabulary")
		return
	}
	util.Created(ctx, item)
}

// DeleteVocabulary godoc
// @Summary 删除词汇
// @Tags 管理
// @Security ApiKeyAuth
// @Param id path int true "词汇ID"
// @Success 204
// @Router /vocabulary/{id} [delete]
func (c *LessonController) DeleteVocabulary(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.LessonService.DeleteVocabulary(ctx.Request.Context(), id); err != nil {
		util.HandleError(ctx, err, "Vocabulary not found", "Failed to delete vocabulary")
		return
	}
	util.NoContent(ctx)
}
