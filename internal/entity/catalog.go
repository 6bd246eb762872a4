package entity

import "time"

// CustomReferenceStyleKey 未指定风格时写入画廊的占位风格
const CustomReferenceStyleKey = "custom_reference"

// StyleSelection 单个风格选择，风格键与自定义参考二选一
type StyleSelection struct {
	ArtistKey       string `json:"artistKey" validate:"required,max=64"`
	StyleKey        string `json:"styleKey,omitempty" validate:"required_without=CustomReference,max=64"`
	CustomReference string `json:"customReference,omitempty" validate:"omitempty,max=500"`
}

// EffectiveStyleKey 返回写入画廊的风格键
func (s StyleSelection) EffectiveStyleKey() string {
	if s.StyleKey == "" {
		return CustomReferenceStyleKey
	}
	return s.StyleKey
}

// DbCatalogEntry 公开画廊中的一条生成记录
type DbCatalogEntry struct {
	ID              string    `gorm:"primaryKey;column:id;type:varchar(64)" json:"id"`
	OwnerUserID     string    `gorm:"column:owner_user_id;type:varchar(128);index;not null" json:"ownerUserId"`
	ArtistKey       string    `gorm:"column:artist_key;type:varchar(64);index" json:"artistKey"`
	StyleKey        string    `gorm:"column:style_key;type:varchar(64);index" json:"styleKey"`
	CustomReference string    `gorm:"column:custom_reference;type:text" json:"customReference,omitempty"`
	ArtifactURL     string    `gorm:"column:artifact_url;type:text;not null" json:"artifactUrl"`
	OriginalURL     string    `gorm:"column:original_url;type:text" json:"originalUrl,omitempty"`
	Size            string    `gorm:"column:size;type:varchar(32)" json:"size"`
	FavoritesCount  int64     `gorm:"column:favorites_count;not null;default:0" json:"favoritesCount"`
	CreatedAt       time.Time `gorm:"column:created_at;index" json:"createdAt"`
}

// TableName overrides default table name.
func (DbCatalogEntry) TableName() string {
	return "catalog_entries"
}
