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

// ToggleFavorite applies the action and keeps favorites_count in the same transaction.
// A missing entry yields gorm.ErrRecordNotFound with nothing written.
func (r *GormRepository) ToggleFavorite(ctx context.Context, userID, entryID string, action entity.FavoriteAction) (*entity.FavoriteState, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if !action.Valid() {
		return nil, fmt.Errorf("invalid favorite action %q", action)
	}

	var state entity.FavoriteState
	err := r.withRetry(ctx, "toggle favorite", func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var entry entity.DbCatalogEntry
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("id = ?", entryID).
				Take(&entry).Error; err != nil {
				return err
			}

			exists, err := favoriteExists(tx, userID, entryID)
			if err != nil {
				return err
			}

			target := action.Resolve(exists)
			if target != exists {
				if target {
					favorite := entity.DbFavorite{
						ID:        entity.FavoriteID(userID, entryID),
						UserID:    userID,
						EntryID:   entryID,
						CreatedAt: time.Now().UTC(),
					}
					if err := tx.Create(&favorite).Error; err != nil {
						return err
					}
					if err := tx.Model(&entity.DbCatalogEntry{}).
						Where("id = ?", entryID).
						UpdateColumn("favorites_count", gorm.Expr("favorites_count + ?", 1)).Error; err != nil {
						return err
					}
				} else {
					result := tx.Where("id = ?", entity.FavoriteID(userID, entryID)).Delete(&entity.DbFavorite{})
					if result.Error != nil {
						return result.Error
					}
					if result.RowsAffected > 0 {
						if err := tx.Model(&entity.DbCatalogEntry{}).
							Where("id = ? AND favorites_count > 0", entryID).
							UpdateColumn("favorites_count", gorm.Expr("favorites_count - ?", 1)).Error; err != nil {
							return err
						}
					}
				}
			}

			count, err := favoritesCount(tx, entryID)
			if err != nil {
				return err
			}
			state = entity.FavoriteState{Favorited: target, Count: count}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// GetFavoriteState reads whether the user favorited the entry and its counter.
func (r *GormRepository) GetFavoriteState(ctx context.Context, userID, entryID string) (*entity.FavoriteState, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}

	db := r.db.WithContext(ctx)
	var entry entity.DbCatalogEntry
	if err := db.Where("id = ?", entryID).Take(&entry).Error; err != nil {
		return nil, err
	}
	exists, err := favoriteExists(db, userID, entryID)
	if err != nil {
		return nil, err
	}
	return &entity.FavoriteState{Favorited: exists, Count: entry.FavoritesCount}, nil
}

// ListFavoriteEntryIDs returns the user's favorited entry ids, newest first.
func (r *GormRepository) ListFavoriteEntryIDs(ctx context.Context, userID string, limit int) ([]string, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if limit <= 0 {
		limit = 500
	}

	ids := make([]string, 0)
	err := r.db.WithContext(ctx).
		Model(&entity.DbFavorite{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Pluck("entry_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func favoriteExists(db *gorm.DB, userID, entryID string) (bool, error) {
	var favorite entity.DbFavorite
	err := db.Where("id = ?", entity.FavoriteID(userID, entryID)).Take(&favorite).Error
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

func favoritesCount(db *gorm.DB, entryID string) (int64, error) {
	var entry entity.DbCatalogEntry
	if err := db.Select("favorites_count").Where("id = ?", entryID).Take(&entry).Error; err != nil {
		return 0, err
	}
	return entry.FavoritesCount, nil
}
