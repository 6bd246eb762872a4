package model

import (
	"context"
	"portrait/internal/entity"
)

// Repository 定义数据库操作接口
type Repository interface {
	// 每日额度计数
	GetUsage(ctx context.Context, userID, dayKey string) (int64, error)
	IncrementUsage(ctx context.Context, userID, dayKey string, delta int64) error

	// 画廊条目
	CreateCatalogEntry(ctx context.Context, entry *entity.DbCatalogEntry) error
	GetCatalogEntry(ctx context.Context, id string) (*entity.DbCatalogEntry, error)

	// 收藏
	ToggleFavorite(ctx context.Context, userID, entryID string, action entity.FavoriteAction) (*entity.FavoriteState, error)
	GetFavoriteState(ctx context.Context, userID, entryID string) (*entity.FavoriteState, error)
	ListFavoriteEntryIDs(ctx context.Context, userID string, limit int) ([]string, error)

	// 打印意向
	CreatePrintInterest(ctx context.Context, interest *entity.DbPrintInterest) error
}
