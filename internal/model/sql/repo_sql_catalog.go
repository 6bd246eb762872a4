package sql

import (
	"context"
	"fmt"
	"portrait/internal/entity"
	"strings"
)

// CreateCatalogEntry inserts a new gallery entry.
func (r *GormRepository) CreateCatalogEntry(ctx context.Context, entry *entity.DbCatalogEntry) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if entry == nil {
		return fmt.Errorf("catalog entry is nil")
	}
	if strings.TrimSpace(entry.ID) == "" {
		return fmt.Errorf("catalog entry id is empty")
	}
	entry.FavoritesCount = 0
	return r.db.WithContext(ctx).Create(entry).Error
}

// GetCatalogEntry fetches a gallery entry by id.
func (r *GormRepository) GetCatalogEntry(ctx context.Context, id string) (*entity.DbCatalogEntry, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}

	var entry entity.DbCatalogEntry
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}
