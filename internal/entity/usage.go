package entity

import (
	"fmt"
	"time"
)

// DbUsageCounter 每个用户每个 UTC 自然日的生成计数
type DbUsageCounter struct {
	ID          string    `gorm:"primaryKey;column:id;type:varchar(191)" json:"id"`
	UserID      string    `gorm:"column:user_id;type:varchar(128);index;not null" json:"user_id"`
	DayKey      string    `gorm:"column:day_key;type:varchar(10);index;not null" json:"day_key"`
	Count       int64     `gorm:"column:count;not null;default:0" json:"count"`
	LastUpdated time.Time `gorm:"column:last_updated" json:"last_updated"`
}

// TableName overrides default table name.
func (DbUsageCounter) TableName() string {
	return "usage_counters"
}

// UsageCounterID 组合主键 {userID}_{dayKey}
func UsageCounterID(userID, dayKey string) string {
	return fmt.Sprintf("%s_%s", userID, dayKey)
}

// UsageStatus 当日额度使用情况
type UsageStatus struct {
	Used       int64     `json:"used"`
	Remaining  int64     `json:"remaining"`
	DailyLimit int64     `json:"dailyLimit"`
	ResetTime  time.Time `json:"resetTime"`
	Date       string    `json:"date"`
}
