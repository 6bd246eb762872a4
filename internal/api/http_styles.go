package api

import (
	"net/http"
	"portrait/internal/prompt"

	"github.com/gin-gonic/gin"
)

// ListStyles 返回风格库，提示词不对外暴露
func (h *HTTPHandler) ListStyles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"artists": prompt.Library()})
}
