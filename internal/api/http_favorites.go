package api

import (
	"net/http"
	"portrait/internal/entity"
	"strings"

	"github.com/gin-gonic/gin"
)

// ToggleFavorite 收藏、取消收藏或切换
func (h *HTTPHandler) ToggleFavorite(c *gin.Context) {
	var request entity.FavoriteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		InvalidPayload(c)
		return
	}

	state, err := h.favorites.Toggle(c.Request.Context(), CurrentUserID(c), request)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// IsFavorited 查询单个条目的收藏状态
func (h *HTTPHandler) IsFavorited(c *gin.Context) {
	imageID := strings.TrimSpace(c.Query("imageId"))
	if imageID == "" {
		MissingField(c, "imageId")
		return
	}

	state, err := h.favorites.IsFavorited(c.Request.Context(), CurrentUserID(c), imageID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// MyFavorites 当前用户收藏的条目 ID
func (h *HTTPHandler) MyFavorites(c *gin.Context) {
	resp, err := h.favorites.ListFavorites(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
