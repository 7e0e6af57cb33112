package middleware

import (
	"errors"

	"holocron-go/internal/api/response"
	"holocron-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler 统一处理 handler 通过 c.Error 上报的错误
// *response.APIError 按自身状态码输出，其余错误一律返回 500
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var apiErr *response.APIError
		if errors.As(err, &apiErr) {
			c.JSON(apiErr.StatusCode, apiErr.ToResponse())
			return
		}

		logger.Error("Unhandled request error",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
		response.InternalError(c)
	}
}
