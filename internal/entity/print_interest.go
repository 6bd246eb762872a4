package entity

import (
	"portrait/internal/entity/common"
	"time"
)

const PrintInterestStatusNew = "new"

// DbPrintInterest 用户对实体打印的意向登记
type DbPrintInterest struct {
	ID        string         `gorm:"primaryKey;column:id;type:varchar(64)" json:"id"`
	UserID    string         `gorm:"column:user_id;type:varchar(128);index;not null" json:"user_id"`
	ImageURL  string         `gorm:"column:image_url;type:text;not null" json:"image_url"`
	Options   common.JSONMap `gorm:"column:options;type:json" json:"options"`
	Status    string         `gorm:"column:status;type:varchar(32);index;not null" json:"status"`
	CreatedAt time.Time      `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides default table name.
func (DbPrintInterest) TableName() string {
	return "print_interests"
}

// PrintInterestRequest 打印意向请求体
type PrintInterestRequest struct {
	ImageURL string         `json:"imageUrl"`
	Options  common.JSONMap `json:"options"`
}
