package cron

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisLocker(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	locker := &RedisLocker{Client: client}

	release, err := locker.TryLock(ctx, "job", time.Minute)
	require.NoError(t, err)
	require.NotNil(t, release)

	second, err := locker.TryLock(ctx, "job", time.Minute)
	require.NoError(t, err)
	assert.Nil(t, second)

	release()
	assert.False(t, mr.Exists("job"))

	third, err := locker.TryLock(ctx, "job", time.Minute)
	require.NoError(t, err)
	assert.NotNil(t, third)
}

func TestRedisLocker_ReleaseKeepsForeignLock(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	locker := &RedisLocker{Client: client}

	release, err := locker.TryLock(ctx, "job", time.Second)
	require.NoError(t, err)
	mr.FastForward(2 * time.Second)

	other, err := locker.TryLock(ctx, "job", time.Minute)
	require.NoError(t, err)
	require.NotNil(t, other)

	release()
	assert.True(t, mr.Exists("job"))
}

func TestLocalLocker(t *testing.T) {
	ctx := context.Background()
	locker := NewLocalLocker()

	release, err := locker.TryLock(ctx, "job", time.Minute)
	require.NoError(t, err)
	require.NotNil(t, release)

	blocked, err := locker.TryLock(ctx, "job", time.Minute)
	require.NoError(t, err)
	assert.Nil(t, blocked)

	release()
	again, err := locker.TryLock(ctx, "job", time.Minute)
	require.NoError(t, err)
	assert.NotNil(t, again)
}
