package quota

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	usageKeyPrefix = "usage:daily:"
	// 保留到次日之后，便于排查
	usageKeyTTL = 48 * time.Hour
)

// RedisCounter keeps daily usage in Redis with INCRBY.
type RedisCounter struct {
	client *redis.Client
}

// NewRedisCounter creates a Redis backed counter.
func NewRedisCounter(client *redis.Client) *RedisCounter {
	return &RedisCounter{client: client}
}

func (c *RedisCounter) key(userID, dayKey string) string {
	return fmt.Sprintf("%s%s:%s", usageKeyPrefix, dayKey, userID)
}

// GetUsage returns zero for a missing key.
func (c *RedisCounter) GetUsage(ctx context.Context, userID, dayKey string) (int64, error) {
	raw, err := c.client.Get(ctx, c.key(userID, dayKey)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get usage from redis: %w", err)
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid usage value %q: %w", raw, err)
	}
	return value, nil
}

// IncrementUsage adds delta and refreshes the key expiry in one transaction.
func (c *RedisCounter) IncrementUsage(ctx context.Context, userID, dayKey string, delta int64) error {
	if delta <= 0 {
		return fmt.Errorf("invalid usage delta %d", delta)
	}
	key := c.key(userID, dayKey)

	pipe := c.client.TxPipeline()
	pipe.IncrBy(ctx, key, delta)
	pipe.Expire(ctx, key, usageKeyTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to increment usage in redis: %w", err)
	}
	return nil
}

var _ Counter = (*RedisCounter)(nil)
