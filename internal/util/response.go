package util

import (
	"english_station_backend/pkg/logger"
	"errors"
	"net"
	"net/http"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse 统一错误响应结构，前端读取 error 字段展示
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse 无资源返回时的提示
type MessageResponse struct {
	Message string `json:"message"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Unauthorized")
}

func Forbidden(c *gin.Context) {
	Error(c, http.StatusForbidden, "Forbidden")
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func InternalServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

func LogInternalError(c *gin.Context, err error, message string) {
	logger.Log.Error("Internal server error",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	InternalServerError(c, message)
}

// HandleError 将领域错误转换为 HTTP 状态码
// notFoundMsg 与 failMsg 分别用于 404 与 5xx 的提示文案
func HandleError(c *gin.Context, err error, notFoundMsg, failMsg string) {
	switch {
	case errors.Is(err, ErrNotFound):
		NotFound(c, notFoundMsg)
	case errors.Is(err, ErrInvalidQuiz):
		Error(c, http.StatusUnprocessableEntity, "Quiz has no questions and cannot be scored")
	case errors.Is(err, ErrInvalidInput):
		BadRequest(c, err.Error())
	case errors.Is(err, ErrConflict):
		Error(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrUnauthorized):
		Error(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrForbidden):
		Forbidden(c)
	case IsConnectionError(err):
		logger.Log.Error("Database unavailable", zap.String("path", c.Request.URL.Path), zap.Error(err))
		Error(c, http.StatusServiceUnavailable, "Database connection refused. Please try again later.")
	default:
		LogInternalError(c, err, failMsg)
	}
}

// IsConnectionError 判断是否为数据库不可达
func IsConnectionError(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}
