package lock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bsm/redislock"
	"github.com/stretchr/testify/assert"
)

type fakeObtainer struct {
	err    error
	key    string
	ttl    time.Duration
	called int
}

func (f *fakeObtainer) Obtain(_ context.Context, key string, ttl time.Duration, _ *redislock.Options) (*redislock.Lock, error) {
	f.called++
	f.key = key
	f.ttl = ttl
	return nil, f.err
}

func TestRedisLocker_Obtain(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		expectedErr error
	}{
		{name: "Held elsewhere", err: redislock.ErrNotObtained, expectedErr: ErrNotObtained},
		{name: "Redis failure", err: errors.New("connection refused"), expectedErr: errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeObtainer{err: tt.err}
			locker := &RedisLocker{client: fake, ttl: 30 * time.Second}

			lock, err := locker.Obtain(context.Background(), "order:o-1")

			assert.Nil(t, lock)
			assert.EqualError(t, err, tt.expectedErr.Error())
			assert.Equal(t, "lock:order:o-1", fake.key)
			assert.Equal(t, 30*time.Second, fake.ttl)
			assert.Equal(t, 1, fake.called)
		})
	}
}

func TestNopLocker(t *testing.T) {
	lock, err := NopLocker{}.Obtain(context.Background(), "order:o-1")

	assert.NoError(t, err)
	assert.NoError(t, lock.Release(context.Background()))
}
