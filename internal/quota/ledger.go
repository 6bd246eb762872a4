package quota

import (
	"context"
	"fmt"
	"portrait/internal/entity"
	"time"

	"github.com/sirupsen/logrus"
)

const dayKeyLayout = "2006-01-02"

// Counter 每日计数的存储后端
type Counter interface {
	GetUsage(ctx context.Context, userID, dayKey string) (int64, error)
	IncrementUsage(ctx context.Context, userID, dayKey string, delta int64) error
}

// Decision is the outcome of a limit evaluation.
type Decision struct {
	Allowed   bool
	Remaining int64
}

// Evaluate 纯函数：count+requested 不超过 limit 即放行
func Evaluate(count, requested, limit int64) Decision {
	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}
	return Decision{
		Allowed:   count+requested <= limit,
		Remaining: remaining,
	}
}

// DayKey formats t as a UTC calendar day.
func DayKey(t time.Time) string {
	return t.UTC().Format(dayKeyLayout)
}

// NextReset returns the next UTC midnight strictly after t.
func NextReset(t time.Time) time.Time {
	utc := t.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day()+1, 0, 0, 0, 0, time.UTC)
}

// Check 额度检查结果，DayKey 用于随后的 Commit
type Check struct {
	Decision
	Used   int64
	DayKey string
}

// Ledger 按用户、按 UTC 日计数的生成额度
type Ledger struct {
	counter Counter
	limit   int64
	now     func() time.Time
}

// NewLedger creates a ledger with the given daily limit.
func NewLedger(counter Counter, limit int64) *Ledger {
	return &Ledger{
		counter: counter,
		limit:   limit,
		now:     time.Now,
	}
}

// WithClock overrides the time source.
func (l *Ledger) WithClock(now func() time.Time) *Ledger {
	l.now = now
	return l
}

func (l *Ledger) Limit() int64 {
	return l.limit
}

// Check reads today's usage and evaluates the request against the limit.
// 读取与后续 Commit 不是原子操作，并发请求可能共同越过上限。
func (l *Ledger) Check(ctx context.Context, userID string, requested int64) (*Check, error) {
	dayKey := DayKey(l.now())
	used, err := l.counter.GetUsage(ctx, userID, dayKey)
	if err != nil {
		return nil, fmt.Errorf("read usage: %w", err)
	}
	return &Check{
		Decision: Evaluate(used, requested, l.limit),
		Used:     used,
		DayKey:   dayKey,
	}, nil
}

// Commit 记账，失败只记录日志，不回滚已交付的结果
func (l *Ledger) Commit(ctx context.Context, userID, dayKey string, units int64) {
	if units <= 0 {
		return
	}
	if err := l.counter.IncrementUsage(ctx, userID, dayKey, units); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"user_id": userID,
			"day_key": dayKey,
			"units":   units,
		}).Error("failed to increment usage")
	}
}

// Status 当日额度概览
func (l *Ledger) Status(ctx context.Context, userID string) (*entity.UsageStatus, error) {
	now := l.now()
	dayKey := DayKey(now)
	used, err := l.counter.GetUsage(ctx, userID, dayKey)
	if err != nil {
		return nil, fmt.Errorf("read usage: %w", err)
	}
	return &entity.UsageStatus{
		Used:       used,
		Remaining:  Evaluate(used, 0, l.limit).Remaining,
		DailyLimit: l.limit,
		ResetTime:  NextReset(now),
		Date:       dayKey,
	}, nil
}
