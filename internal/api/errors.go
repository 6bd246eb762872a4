package api

import (
	"net/http"
	"portrait/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// 错误码定义，与服务层保持一致
const (
	// 通用错误码
	ErrCodeInvalidRequest = service.CodeInvalidRequest
	ErrCodeMissingField   = service.CodeMissingField
	ErrCodeNotFound       = service.CodeNotFound
	ErrCodeInternalError  = service.CodeInternal

	// 认证错误码
	ErrCodeUnauthorized   = service.CodeUnauthorized
	ErrCodeSessionExpired = service.CodeSessionExpired

	// 生成相关错误码
	ErrCodeFileTooLarge   = service.CodeFileTooLarge
	ErrCodeQuotaExceeded  = service.CodeQuotaExceeded
	ErrCodeUpstreamFailed = service.CodeUpstreamFailed
)

// APIError 统一的 API 错误响应结构
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorResponse 返回统一格式的错误响应
func ErrorResponse(c *gin.Context, status int, code string, message string) {
	c.JSON(status, APIError{
		Code:    code,
		Message: message,
	})
}

// ErrorResponseWithDetails 返回带详情的错误响应
func ErrorResponseWithDetails(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// BadRequest 400 错误请求
func BadRequest(c *gin.Context, code string, message string) {
	ErrorResponse(c, http.StatusBadRequest, code, message)
}

// Unauthorized 401 未授权
func Unauthorized(c *gin.Context, code string, message string) {
	ErrorResponse(c, http.StatusUnauthorized, code, message)
}

// InternalError 500 服务器内部错误
func InternalError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, ErrCodeInternalError, message)
}

// MissingField 缺少必填字段
func MissingField(c *gin.Context, field string) {
	ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeMissingField, field+" is required", gin.H{"field": field})
}

// InvalidPayload 无效的请求体
func InvalidPayload(c *gin.Context) {
	ErrorResponse(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request payload")
}

// statusForKind 服务层错误类别到 HTTP 状态码
func statusForKind(kind service.ErrorKind) int {
	switch kind {
	case service.KindValidation:
		return http.StatusBadRequest
	case service.KindAuth:
		return http.StatusUnauthorized
	case service.KindQuotaExceeded:
		return http.StatusTooManyRequests
	case service.KindUpstream:
		return http.StatusBadGateway
	case service.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError 将服务层错误写成统一响应，非服务层错误按 500 处理
func writeServiceError(c *gin.Context, err error) {
	svcErr, ok := service.AsError(err)
	if !ok {
		logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("unexpected error")
		InternalError(c, "internal server error")
		return
	}

	status := statusForKind(svcErr.Kind)
	switch {
	case svcErr.Kind == service.KindQuotaExceeded:
		ErrorResponseWithDetails(c, status, svcErr.Code, svcErr.Message, gin.H{"remaining": svcErr.Remaining})
	case svcErr.Field != "":
		ErrorResponseWithDetails(c, status, svcErr.Code, svcErr.Message, gin.H{"field": svcErr.Field})
	default:
		ErrorResponse(c, status, svcErr.Code, svcErr.Message)
	}
}
