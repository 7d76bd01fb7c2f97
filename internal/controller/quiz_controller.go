package controller

import (
	"english_station_backend/internal/service"
	"english_station_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// ListQuizzes godoc
// @Summary 测验列表
// @Tags 测验
// @Produce json
// @Success 200 {array} model.QuizView
// @Router /quiz [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	quizzes, err := c.QuizService.List(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err, "Quiz not found", "Failed to fetch quizzes")
		return
	}
	util.Success(ctx, quizzes)
}

// GetQuiz godoc
// @Summary 获取测验
// @Description 返回题目与选项，不包含正确答案
// @Tags 测验
// @Produce json
// @Param id path int true "测验ID"
// @Success 200 {object} model.QuizView
// @Failure 404 {object} util.ErrorResponse
// @Router /quiz/{id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	quiz, err := c.QuizService.Get(ctx.Request.Context(), id)
	if err != nil {
		util.HandleError(ctx, err, "Quiz not found", "Failed to fetch quiz")
		return
	}
	util.Success(ctx, quiz)
}

// GetQuizForAdmin godoc
// @Summary 获取完整测验
// @Description 包含 isCorrect，供后台编辑
// @Tags 管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "测验ID"
// @Success 200 {object} model.Quiz
// @Router /admin/quizzes/{id} [get]
func (c *QuizController) GetQuizForAdmin(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	quiz, err := c.QuizService.GetForAdmin(ctx.Request.Context(), id)
	if err != nil {
		util.HandleError(ctx, err, "Quiz not found", "Failed to fetch quiz")
		return
	}
	util.Success(ctx, quiz)
}

// CreateQuiz godoc
// @Summary 创建测验
// @Description 每道题至少两个选项且只有一个正确答案
// @Tags 管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.QuizInput true "测验"
// @Success 201 {object} model.Quiz
// @Failure 400 {object} util.ErrorResponse
// @Router /quiz [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	var req service.QuizInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.QuizService.Create(ctx.Request.Context(), req)
	if err != nil {
		util.HandleError(ctx, err, "Quiz not found", "Failed to create quiz")
		return
	}
	util.Created(ctx, quiz)
}

// UpdateQuiz godoc
// @Summary 更新测验
// @Description 题目与答案整体替换
// @Tags 管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "测验ID"
// @Param body body service.QuizInput true "测验"
// @Success 200 {object} model.Quiz
// @Router /quiz/{id} [put]
func (c *QuizController) UpdateQuiz(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req service.QuizInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.QuizService.Update(ctx.Request.Context(), id, req)
	if err != nil {
		util.HandleError(ctx, err, "Quiz not found", "Failed to update quiz")
		return
	}
	util.Success(ctx, quiz)
}

// DeleteQuiz godoc
// @Summary 删除测验
// @Tags 管理
// @Security ApiKeyAuth
// @Param id path int true "测验ID"
// @Success 204
// @Router /quiz/{id} [delete]
func (c *QuizController) DeleteQuiz(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.QuizService.Delete(ctx.Request.Context(), id); err != nil {
		util.HandleError(ctx, err, "Quiz not found", "Failed to delete quiz")
		return
	}
	util.NoContent(ctx)
}

// SubmitQuiz godoc
// @Summary 提交测验
// @Description 评分并保存结果，每次提交都会新增一条记录
// @Tags 测验
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "测验ID"
// @Param body body service.SubmitRequest true "作答"
// @Success 200 {object} service.SubmitResult
// @Failure 404 {object} util.ErrorResponse "测验不存在"
// @Failure 422 {object} util.ErrorResponse "测验没有题目"
// @Router /quiz/{id}/submit [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req service.SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	userID, ok := resolveUserID(ctx, req.UserID)
	if !ok {
		return
	}
	req.UserID = userID

	res, err := c.QuizService.Submit(ctx.Request.Context(), id, req)
	if err != nil {
		util.HandleError(ctx, err, "Quiz not found", "Failed to submit quiz")
		return
	}
	util.Success(ctx, res)
}

// GetResults godoc
// @Summary 测验记录
// @Description 按时间倒序，附带测验与课程
// @Tags 测验
// @Produce json
// @Security ApiKeyAuth
// @Param userId path string true "用户ID"
// @Success 200 {array} model.QuizResult
// @Router /quiz/results/{userId} [get]
func (c *QuizController) GetResults(ctx *gin.Context) {
	userID := ctx.Param("userId")
	if !requireSelfOrAdmin(ctx, userID) {
		return
	}

	results, err := c.QuizService.Results(ctx.Request.Context(), userID)
	if err != nil {
		util.HandleError(ctx, err, "Results not found", "Failed to fetch quiz results")
		return
	}
	util.Success(ctx, results)
}
