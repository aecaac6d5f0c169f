//go:build integration
// +build integration

package lock

import (
	"context"
	"fmt"
	"testing"
	"time"

	apperrors "valuation-backend/internal/errors"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7-alpine",
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Purge(resource) })

	rdb := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("127.0.0.1:%s", resource.GetPort("6379/tcp"))})
	pool.MaxWait = time.Minute
	require.NoError(t, pool.Retry(func() error {
		return rdb.Ping(context.Background()).Err()
	}))
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestRedisLockerExcludesConcurrentHolders(t *testing.T) {
	rdb := startRedis(t)
	ctx := context.Background()
	locker := NewRedisLocker(rdb, 500*time.Millisecond)

	held, err := locker.Acquire(ctx, ScopeKey("acme", "SBI", "land"))
	require.NoError(t, err)

	_, err = locker.Acquire(ctx, ScopeKey("acme", "SBI", "land"))
	assert.ErrorIs(t, err, apperrors.ErrScopeLocked)

	other, err := locker.Acquire(ctx, ScopeKey("acme", "SBI", "flat"))
	require.NoError(t, err)
	assert.NoError(t, other.Release(ctx))

	require.NoError(t, held.Release(ctx))
	again, err := locker.Acquire(ctx, ScopeKey("acme", "SBI", "land"))
	require.NoError(t, err)
	assert.NoError(t, again.Release(ctx))
}
