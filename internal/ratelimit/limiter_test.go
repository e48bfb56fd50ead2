package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLimiterDisabled(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:6379"})
	defer client.Close()

	assert.Nil(t, NewLimiter(nil, 100, zap.NewNop()))
	assert.Nil(t, NewLimiter(client, 0, zap.NewNop()))
	assert.Nil(t, NewLimiter(client, -1, zap.NewNop()))
	assert.NotNil(t, NewLimiter(client, 10, zap.NewNop()))
}

func TestNilLimiterAllowsEverything(t *testing.T) {
	var limiter *Limiter
	for i := 0; i < 5; i++ {
		assert.True(t, limiter.Allow(context.Background(), "10.0.0.1"))
	}
}

func TestAllowFailsOpenWhenRedisUnavailable(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:6379"})
	require.NoError(t, client.Close())

	limiter := NewLimiter(client, 1, zap.NewNop())
	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow(context.Background(), "10.0.0.1"))
	}
}

func TestBucketKeyStableWithinWindow(t *testing.T) {
	base := time.Date(2025, time.March, 7, 12, 30, 0, 0, time.UTC)

	assert.Equal(t,
		bucketKey("10.0.0.1", base),
		bucketKey("10.0.0.1", base.Add(30*time.Second)),
	)
}

func TestBucketKeyRollsOverBetweenWindows(t *testing.T) {
	base := time.Date(2025, time.March, 7, 12, 30, 0, 0, time.UTC)

	assert.NotEqual(t,
		bucketKey("10.0.0.1", base),
		bucketKey("10.0.0.1", base.Add(time.Minute)),
	)
}

func TestBucketKeySeparatesClients(t *testing.T) {
	now := time.Now()

	assert.NotEqual(t,
		bucketKey("10.0.0.1", now),
		bucketKey("10.0.0.2", now),
	)
}
