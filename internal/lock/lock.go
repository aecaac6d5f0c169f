// Package lock serializes check-then-insert sequences across server instances.
package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "valuation-backend/internal/errors"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Locker acquires named mutual-exclusion locks
type Locker interface {
	Acquire(ctx context.Context, key string) (Unlocker, error)
}

// Unlocker releases a held lock
type Unlocker interface {
	Release(ctx context.Context) error
}

// RedisLocker is a Locker backed by Redis SET NX locks
type RedisLocker struct {
	client  *redislock.Client
	ttl     time.Duration
	backoff time.Duration
	retries int
}

// NewRedisLocker creates a locker whose locks expire after ttl unless released.
// Acquire retries with linear backoff for about half of ttl before giving up.
func NewRedisLocker(rdb redis.UniversalClient, ttl time.Duration) *RedisLocker {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	backoff := 100 * time.Millisecond
	return &RedisLocker{
		client:  redislock.New(rdb),
		ttl:     ttl,
		backoff: backoff,
		retries: int(ttl/backoff) / 2,
	}
}

// Acquire blocks until key is locked, the retry budget runs out or ctx is done
func (l *RedisLocker) Acquire(ctx context.Context, key string) (Unlocker, error) {
	// retry strategies count attempts, so each call gets its own
	retry := redislock.LimitRetry(redislock.LinearBackoff(l.backoff), l.retries)
	held, err := l.client.Obtain(ctx, key, l.ttl, &redislock.Options{RetryStrategy: retry})
	if err != nil {
		if errors.Is(err, redislock.ErrNotObtained) {
			return nil, apperrors.ErrScopeLocked
		}
		return nil, fmt.Errorf("obtain lock %s: %w", key, err)
	}
	return redisUnlocker{lock: held}, nil
}

type redisUnlocker struct {
	lock *redislock.Lock
}

func (u redisUnlocker) Release(ctx context.Context) error {
	err := u.lock.Release(ctx)
	if errors.Is(err, redislock.ErrLockNotHeld) {
		logrus.WithField("key", u.lock.Key()).Warn("Lock expired before release")
		return nil
	}
	return err
}

// NoopLocker grants every lock immediately. Without a shared lock server the
// check-then-insert sequences it guards are best effort.
type NoopLocker struct{}

// Acquire always succeeds
func (NoopLocker) Acquire(context.Context, string) (Unlocker, error) {
	return noopUnlocker{}, nil
}

type noopUnlocker struct{}

func (noopUnlocker) Release(context.Context) error { return nil }

// ScopeKey builds the lock key of a custom template scope
func ScopeKey(orgShortName, bankCode, propertyType string) string {
	return fmt.Sprintf("custom-templates:%s:%s:%s", orgShortName, bankCode, propertyType)
}
