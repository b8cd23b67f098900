// Package lock serializes work on a single key across processes.
package lock

import (
	"context"
	"errors"
	"time"

	"github.com/bsm/redislock"
	"go.uber.org/zap"
)

//go:generate mockgen -source=lock.go -destination=mock_lock.go -package=lock

var ErrNotObtained = errors.New("lock not obtained")

type Lock interface {
	Release(ctx context.Context) error
}

type Locker interface {
	Obtain(ctx context.Context, key string) (Lock, error)
}

type obtainer interface {
	Obtain(ctx context.Context, key string, ttl time.Duration, opt *redislock.Options) (*redislock.Lock, error)
}

// RedisLocker hands out redis leases that expire after ttl if the holder dies.
type RedisLocker struct {
	client obtainer
	ttl    time.Duration
	retry  redislock.RetryStrategy
}

func NewRedisLocker(client redislock.RedisClient, ttl time.Duration) *RedisLocker {
	return &RedisLocker{
		client: redislock.New(client),
		ttl:    ttl,
		retry:  redislock.LimitRetry(redislock.LinearBackoff(100*time.Millisecond), 3),
	}
}

func (l *RedisLocker) Obtain(ctx context.Context, key string) (Lock, error) {
	lock, err := l.client.Obtain(ctx, "lock:"+key, l.ttl, &redislock.Options{RetryStrategy: l.retry})
	if errors.Is(err, redislock.ErrNotObtained) {
		zap.L().Warn("lock is held elsewhere", zap.String("key", key))
		return nil, ErrNotObtained
	}
	if err != nil {
		zap.L().Error("failed to obtain lock", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	return lock, nil
}

// NopLocker is used when no redis is configured. The database transaction still guards each settlement.
type NopLocker struct{}

func (NopLocker) Obtain(context.Context, string) (Lock, error) {
	return nopLock{}, nil
}

type nopLock struct{}

func (nopLock) Release(context.Context) error { return nil }
