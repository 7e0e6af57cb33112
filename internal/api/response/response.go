package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 统一错误响应
type ErrorResponse struct {
	Message string `json:"message" example:"Planet not found"`
}

// APIError 业务错误，携带响应状态码，由 ErrorHandler 中间件统一输出
type APIError struct {
	Message    string
	StatusCode int
}

// NewAPIError 创建业务错误，默认状态码 400
func NewAPIError(message string) *APIError {
	return &APIError{Message: message, StatusCode: http.StatusBadRequest}
}

// NotFoundError 创建 404 业务错误
func NotFoundError(message string) *APIError {
	return NewAPIError(message).WithStatus(http.StatusNotFound)
}

// WithStatus 覆盖状态码
func (e *APIError) WithStatus(code int) *APIError {
	e.StatusCode = code
	return e
}

func (e *APIError) Error() string {
	return e.Message
}

// ToResponse 转换为响应体
func (e *APIError) ToResponse() ErrorResponse {
	return ErrorResponse{Message: e.Message}
}

// Abort 记录错误并终止后续处理，响应由 ErrorHandler 写出
func Abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func OK(c *gin.Context, body interface{}) {
	c.JSON(http.StatusOK, body)
}

func Created(c *gin.Context, body interface{}) {
	c.JSON(http.StatusCreated, body)
}

func Fail(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, ErrorResponse{Message: message})
}

func InternalError(c *gin.Context) {
	Fail(c, http.StatusInternalServerError, "Internal server error")
}
