package util

import (
	"lingo_backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 错误响应统一为 {"error": "..."}，与前端客户端约定保持一致

// ErrorResponse 错误响应结构
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context) {
	Error(c, http.StatusForbidden, "Forbidden")
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func ServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Server error")
}

// LogServerError 记录内部错误详情，客户端只收到通用错误
func LogServerError(c *gin.Context, err error) {
	logger.Log.Error("Server error",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	ServerError(c)
}
