package sql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	maxTxAttempts = 5
	txRetryDelay  = 20 * time.Millisecond
)

// GormRepository implements Repository using GORM
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a new repository instance
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// withRetry reruns fn while it fails with a transient write conflict.
func (r *GormRepository) withRetry(ctx context.Context, op string, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = fn()
		if err == nil || !isRetryableTxError(err) {
			return err
		}
		logrus.WithError(err).WithFields(logrus.Fields{
			"op":      op,
			"attempt": attempt,
		}).Warn("transaction conflict, retrying")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * txRetryDelay):
		}
	}
	return fmt.Errorf("%s: giving up after %d attempts: %w", op, maxTxAttempts, err)
}

// isRetryableTxError 识别各数据库的并发冲突错误
func isRetryableTxError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	// mysql 1213/1205, postgres 40001/40P01, sqlite busy
	for _, marker := range []string{
		"deadlock",
		"could not serialize",
		"sqlstate 40001",
		"lock wait timeout",
		"database is locked",
		"database table is locked",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
