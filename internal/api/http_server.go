package api

import (
	"context"
	"net/http"
	"portrait/internal/auth"
	"portrait/internal/entity"
	"portrait/internal/service"

	"github.com/gin-gonic/gin"
)

// Generator 生成编排与额度查询
type Generator interface {
	Generate(ctx context.Context, req service.GenerationRequest) (*entity.GenerationResponse, error)
	UsageStatus(ctx context.Context, userID string) (*entity.UsageStatus, error)
}

// Favorites 收藏切换与查询
type Favorites interface {
	Toggle(ctx context.Context, userID string, req entity.FavoriteRequest) (*entity.FavoriteState, error)
	IsFavorited(ctx context.Context, userID, entryID string) (*entity.FavoriteState, error)
	ListFavorites(ctx context.Context, userID string) (*entity.FavoriteListResponse, error)
}

// PrintInterests 打印意向登记
type PrintInterests interface {
	Record(ctx context.Context, userID string, req entity.PrintInterestRequest) (string, error)
}

// HTTPHandler HTTP 请求处理器
type HTTPHandler struct {
	verifier     auth.Verifier
	maxFileBytes int64

	// 服务层
	generation     Generator
	favorites      Favorites
	printInterests PrintInterests
}

// NewHTTPHandler 创建 HTTP 处理器实例
func NewHTTPHandler(
	verifier auth.Verifier,
	maxFileBytes int64,
	generation Generator,
	favorites Favorites,
	printInterests PrintInterests,
) *HTTPHandler {
	return &HTTPHandler{
		verifier:       verifier,
		maxFileBytes:   maxFileBytes,
		generation:     generation,
		favorites:      favorites,
		printInterests: printInterests,
	}
}

// RegisterRoutes 注册全部路由
func (h *HTTPHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	apiGroup := r.Group("/api")
	apiGroup.GET("/styles", h.ListStyles)

	// 生成接口自行校验令牌，支持表单字段 idToken
	apiGroup.POST("/generate", h.Generate)

	protected := apiGroup.Group("")
	protected.Use(h.AuthMiddleware())
	protected.GET("/generation-status", h.GenerationStatus)
	protected.POST("/favorite", h.ToggleFavorite)
	protected.GET("/is-favorited", h.IsFavorited)
	protected.GET("/my-favorites", h.MyFavorites)
	protected.POST("/print-interest", h.RecordPrintInterest)
}
