package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubLocks(t *testing.T, lock func(ctx context.Context, key, value string, ttl time.Duration) (bool, error), release func(ctx context.Context, key, value string) error) {
	origNew, origRelease, origDelay := newLock, releaseLock, lockRetryDelay
	t.Cleanup(func() {
		newLock, releaseLock, lockRetryDelay = origNew, origRelease, origDelay
	})
	newLock = lock
	if release != nil {
		releaseLock = release
	}
	lockRetryDelay = 0
}

func TestAcquireLock(t *testing.T) {
	t.Run("contended lock yields a readable error", func(t *testing.T) {
		attempts := 0
		stubLocks(t, func(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
			attempts++
			return false, nil
		}, nil)

		release, err := acquireLock(context.Background(), "slot_lock:7_2026-09-10_09:30")

		require.Error(t, err)
		assert.Nil(t, release)
		assert.ErrorIs(t, err, errLockContended)
		assert.NotContains(t, err.Error(), "%!w")
		assert.Equal(t, lockMaxRetries, attempts)
	})

	t.Run("redis failure is wrapped", func(t *testing.T) {
		redisErr := errors.New("connection refused")
		stubLocks(t, func(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
			return false, redisErr
		}, nil)

		_, err := acquireLock(context.Background(), "slot_lock:7")

		require.Error(t, err)
		assert.ErrorIs(t, err, redisErr)
	})

	t.Run("successful lock releases with the same fencing value", func(t *testing.T) {
		var lockedValue, releasedValue string
		stubLocks(t, func(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
			lockedValue = value
			return true, nil
		}, func(ctx context.Context, key, value string) error {
			releasedValue = value
			return nil
		})

		release, err := acquireLock(context.Background(), "slot_lock:7")

		require.NoError(t, err)
		require.NotNil(t, release)
		release()
		assert.Equal(t, lockedValue, releasedValue)
	})
}
