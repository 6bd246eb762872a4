package api

import (
	"errors"
	"net/http"
	"strings"

	"portrait/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	currentUserContextKey = "current-user-id"
)

// bearerToken 从 Authorization 头中提取 Bearer Token，格式不符返回空串
func bearerToken(c *gin.Context) string {
	authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// AuthMiddleware 身份令牌认证中间件
func (h *HTTPHandler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
				Code:    ErrCodeUnauthorized,
				Message: "missing bearer token",
			})
			return
		}

		userID, err := h.verifier.Verify(c.Request.Context(), tokenString)
		if err != nil {
			logrus.WithError(err).WithField("path", c.Request.URL.Path).Warn("failed to verify identity token")
			code := ErrCodeSessionExpired
			if errors.Is(err, auth.ErrMissingToken) {
				code = ErrCodeUnauthorized
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
				Code:    code,
				Message: "invalid or expired token",
			})
			return
		}

		c.Set(currentUserContextKey, userID)
		c.Next()
	}
}

// CurrentUserID 从上下文获取当前认证用户
func CurrentUserID(c *gin.Context) string {
	value, exists := c.Get(currentUserContextKey)
	if !exists {
		return ""
	}
	userID, _ := value.(string)
	return userID
}
