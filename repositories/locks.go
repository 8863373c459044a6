package repositories

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"UniClinic/database"

	"github.com/google/uuid"
)

const (
	lockMaxRetries = 3
	lockExpiry     = 10 * time.Second
)

var lockRetryDelay = 2 * time.Second

// errLockContended is returned when every retry found the lock held by
// someone else.
var errLockContended = errors.New("failed to acquire lock: already held")

// Indirection over the Redis lock primitives.
var (
	newLock     = database.NewLock
	releaseLock = database.ReleaseLock
)

// acquireLock takes a Redis lock with retries and returns a release func.
// The fencing value guards against releasing someone else's lock.
func acquireLock(ctx context.Context, key string) (func(), error) {
	lockValue := uuid.New().String()

	var locked bool
	var err error
	for i := 0; i < lockMaxRetries; i++ {
		locked, err = newLock(ctx, key, lockValue, lockExpiry)
		if err == nil && locked {
			break
		}
		if i < lockMaxRetries-1 {
			time.Sleep(lockRetryDelay)
		}
	}
	if !locked {
		if err != nil {
			return nil, fmt.Errorf("failed to acquire lock after retries: %w", err)
		}
		return nil, errLockContended
	}

	release := func() {
		if err := releaseLock(ctx, key, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}
	return release, nil
}
