// Package lock provides named mutual-exclusion locks used to serialize
// document number generation across requests and processes.
package lock

import (
	"context"
	"errors"
	"time"
)

// ErrNotObtained is returned when a lock could not be acquired before the wait deadline
var ErrNotObtained = errors.New("lock: not obtained")

// Locker obtains named locks
type Locker interface {
	// Obtain blocks until the lock is held, ctx is done, or wait elapses.
	// ttl bounds how long a crashed holder can keep the lock.
	Obtain(ctx context.Context, key string, ttl, wait time.Duration) (Lock, error)
}

// Lock is a held lock
type Lock interface {
	Release(ctx context.Context) error
}

// WithLock runs fn while holding key
func WithLock(ctx context.Context, l Locker, key string, ttl, wait time.Duration, fn func(ctx context.Context) error) error {
	held, err := l.Obtain(ctx, key, ttl, wait)
	if err != nil {
		return err
	}
	defer func() {
		// release on a fresh context so a cancelled request still frees the key
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
		defer cancel()
		_ = held.Release(releaseCtx)
	}()
	return fn(ctx)
}
