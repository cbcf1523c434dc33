// Package lock serializes writers of a single wallet.
//
// Two implementations exist: an in-process sharded lock for single-instance
// deployments and a Redis lock for deployments where several service
// instances share one store.
package lock

import (
	"context"
	"errors"
)

// ErrNotAcquired is returned when a distributed lock could not be taken before
// the caller's context expired.
var ErrNotAcquired = errors.New("wallet lock not acquired")

// Locker hands out exclusive per-key locks. Lock blocks until the key is free
// or ctx is done; on success the caller must call the returned unlock func.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
