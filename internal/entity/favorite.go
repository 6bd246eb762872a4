package entity

import (
	"fmt"
	"time"
)

// FavoriteAction 收藏操作，空值表示切换
type FavoriteAction string

const (
	FavoriteActionAdd    FavoriteAction = "add"
	FavoriteActionRemove FavoriteAction = "remove"
	FavoriteActionToggle FavoriteAction = ""
)

// Valid reports whether the action is one of the known values.
func (a FavoriteAction) Valid() bool {
	switch a {
	case FavoriteActionAdd, FavoriteActionRemove, FavoriteActionToggle:
		return true
	default:
		return false
	}
}

// Resolve 根据当前状态计算目标状态
func (a FavoriteAction) Resolve(current bool) bool {
	switch a {
	case FavoriteActionAdd:
		return true
	case FavoriteActionRemove:
		return false
	default:
		return !current
	}
}

// DbFavorite 存在即表示已收藏
type DbFavorite struct {
	ID        string    `gorm:"primaryKey;column:id;type:varchar(255)" json:"id"`
	UserID    string    `gorm:"column:user_id;type:varchar(128);index;not null" json:"user_id"`
	EntryID   string    `gorm:"column:entry_id;type:varchar(64);index;not null" json:"entry_id"`
	CreatedAt time.Time `gorm:"column:created_at;index" json:"created_at"`
}

// TableName overrides default table name.
func (DbFavorite) TableName() string {
	return "favorites"
}

// FavoriteID 组合主键 {userID}_{entryID}
func FavoriteID(userID, entryID string) string {
	return fmt.Sprintf("%s_%s", userID, entryID)
}

// FavoriteState 收藏操作后的状态
type FavoriteState struct {
	Favorited bool  `json:"favorited"`
	Count     int64 `json:"count"`
}

// FavoriteRequest 收藏切换请求
type FavoriteRequest struct {
	ImageID string         `json:"imageId"`
	Action  FavoriteAction `json:"action"`
}

// FavoriteListResponse 当前用户收藏的条目
type FavoriteListResponse struct {
	ImageIDs []string `json:"imageIds"`
}
