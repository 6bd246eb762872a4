package sql

import (
	"context"
	"errors"
	"fmt"
	"portrait/internal/entity"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetUsage returns the counter for the user and day, zero when absent.
func (r *GormRepository) GetUsage(ctx context.Context, userID, dayKey string) (int64, error) {
	if r == nil || r.db == nil {
		return 0, fmt.Errorf("repository not initialised")
	}

	var counter entity.DbUsageCounter
	err := r.db.WithContext(ctx).
		Where("id = ?", entity.UsageCounterID(userID, dayKey)).
		Take(&counter).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return counter.Count, nil
}

// IncrementUsage upserts the counter and adds delta atomically in the database.
func (r *GormRepository) IncrementUsage(ctx context.Context, userID, dayKey string, delta int64) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if delta <= 0 {
		return fmt.Errorf("invalid usage delta %d", delta)
	}

	now := time.Now().UTC()
	counter := entity.DbUsageCounter{
		ID:          entity.UsageCounterID(userID, dayKey),
		UserID:      userID,
		DayKey:      dayKey,
		Count:       delta,
		LastUpdated: now,
	}

	return r.withRetry(ctx, "increment usage", func() error {
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"count":        gorm.Expr("usage_counters.count + ?", delta),
				"last_updated": now,
			}),
		}).Create(&counter).Error
	})
}
