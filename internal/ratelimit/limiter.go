package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const window = time.Minute

// Limiter enforces a fixed-window request budget per client key. State lives
// in Redis so replicas share one budget.
type Limiter struct {
	client *redis.Client
	limit  int
	logger *zap.Logger
}

// NewLimiter constructs a limiter. It returns nil when Redis is absent or the
// budget is zero. A nil limiter allows everything.
func NewLimiter(client *redis.Client, perMinute int, logger *zap.Logger) *Limiter {
	if client == nil || perMinute <= 0 {
		return nil
	}
	return &Limiter{client: client, limit: perMinute, logger: logger}
}

// Allow reports whether the key has budget left in the current window. Redis
// errors fail open.
func (l *Limiter) Allow(ctx context.Context, key string) bool {
	if l == nil {
		return true
	}
	bucket := bucketKey(key, time.Now())
	n, err := l.client.Incr(ctx, bucket).Result()
	if err != nil {
		l.logger.Warn("rate limiter unavailable; allowing request", zap.Error(err))
		return true
	}
	if n == 1 {
		if err := l.client.Expire(ctx, bucket, window).Err(); err != nil {
			l.logger.Warn("rate limiter expire failed", zap.Error(err))
		}
	}
	return n <= int64(l.limit)
}

// bucketKey pins a key to its minute window.
func bucketKey(key string, now time.Time) string {
	return fmt.Sprintf("ratelimit:%s:%d", key, now.Unix()/int64(window/time.Second))
}
