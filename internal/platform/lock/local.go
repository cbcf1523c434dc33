package lock

import (
	"context"
	"hash/fnv"
)

const shardCount = 256

// LocalLocker is a fixed pool of channel-based mutexes. Keys hashing to the
// same shard share a lock, which bounds memory regardless of wallet count.
type LocalLocker struct {
	shards [shardCount]chan struct{}
}

// NewLocalLocker creates an in-process Locker.
func NewLocalLocker() *LocalLocker {
	l := &LocalLocker{}
	for i := range l.shards {
		l.shards[i] = make(chan struct{}, 1)
		l.shards[i] <- struct{}{}
	}
	return l
}

var _ Locker = (*LocalLocker)(nil)

// Lock acquires the shard for key, giving up when ctx is cancelled.
func (l *LocalLocker) Lock(ctx context.Context, key string) (func(), error) {
	shard := l.shards[shardIndex(key)]
	select {
	case <-shard:
		return func() { shard <- struct{}{} }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func shardIndex(key string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return h.Sum32() % shardCount
}
