package lock

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	redisKeyPrefix     = "wallet-lock:"
	defaultRetryDelay  = 25 * time.Millisecond
	releaseTimeout     = 2 * time.Second
	releaseIfOwnerEval = `if redis.call("get", KEYS[1]) == ARGV[1] then return redis.call("del", KEYS[1]) else return 0 end`
)

// RedisLocker takes per-wallet locks with SET NX PX so that several service
// instances can share one store. A lock expires after ttl if its holder dies.
type RedisLocker struct {
	client     redis.Cmdable
	ttl        time.Duration
	retryDelay time.Duration
	newToken   func() string
}

// RedisOption configures a RedisLocker.
type RedisOption func(*RedisLocker)

// WithRetryDelay sets how long Lock waits between acquisition attempts.
func WithRetryDelay(d time.Duration) RedisOption {
	return func(l *RedisLocker) {
		l.retryDelay = d
	}
}

// WithTokenFunc overrides how lock ownership tokens are generated.
func WithTokenFunc(fn func() string) RedisOption {
	return func(l *RedisLocker) {
		l.newToken = fn
	}
}

// NewRedisLocker creates a Locker backed by client.
func NewRedisLocker(client redis.Cmdable, ttl time.Duration, opts ...RedisOption) *RedisLocker {
	l := &RedisLocker{
		client:     client,
		ttl:        ttl,
		retryDelay: defaultRetryDelay,
		newToken:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ Locker = (*RedisLocker)(nil)

// Lock polls SET NX until the key is free, ctx is done or Redis fails.
func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	redisKey := redisKeyPrefix + key
	token := l.newToken()

	for {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("%w: %v", ErrNotAcquired, ctx.Err())
			}
			return nil, fmt.Errorf("acquiring lock %s: %w", redisKey, err)
		}
		if ok {
			return func() { l.release(redisKey, token) }, nil
		}

		timer := time.NewTimer(l.retryDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("%w: %v", ErrNotAcquired, ctx.Err())
		case <-timer.C:
		}
	}
}

// release deletes the key only while it still holds our token, so an expired
// lock re-taken by another instance is left alone.
func (l *RedisLocker) release(redisKey, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()

	if err := l.client.Eval(ctx, releaseIfOwnerEval, []string{redisKey}, token).Err(); err != nil {
		slog.Default().Warn("Failed to release wallet lock",
			slog.String("key", redisKey),
			slog.String("error", err.Error()))
	}
}
