package sql

import (
	"context"
	"fmt"
	"portrait/internal/entity"
)

// CreatePrintInterest stores a print request lead.
func (r *GormRepository) CreatePrintInterest(ctx context.Context, interest *entity.DbPrintInterest) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if interest == nil {
		return fmt.Errorf("print interest is nil")
	}
	return r.db.WithContext(ctx).Create(interest).Error
}
