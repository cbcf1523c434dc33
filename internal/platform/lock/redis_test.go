package lock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "token-1"

func newTestRedisLocker(t *testing.T) (*RedisLocker, redismock.ClientMock) {
	t.Helper()
	client, mock := redismock.NewClientMock()
	l := NewRedisLocker(client, 5*time.Second,
		WithRetryDelay(time.Millisecond),
		WithTokenFunc(func() string { return testToken }),
	)
	return l, mock
}

func TestRedisLocker_AcquireAndRelease(t *testing.T) {
	l, mock := newTestRedisLocker(t)
	key := redisKeyPrefix + "DOCTOR:doctor_001"

	mock.ExpectSetNX(key, testToken, 5*time.Second).SetVal(true)
	mock.ExpectEval(releaseIfOwnerEval, []string{key}, testToken).SetVal(int64(1))

	unlock, err := l.Lock(context.Background(), "DOCTOR:doctor_001")
	require.NoError(t, err)
	unlock()

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisLocker_RetriesWhileHeld(t *testing.T) {
	l, mock := newTestRedisLocker(t)
	key := redisKeyPrefix + "PHARMACY:pharmacy_001"

	mock.ExpectSetNX(key, testToken, 5*time.Second).SetVal(false)
	mock.ExpectSetNX(key, testToken, 5*time.Second).SetVal(false)
	mock.ExpectSetNX(key, testToken, 5*time.Second).SetVal(true)
	mock.ExpectEval(releaseIfOwnerEval, []string{key}, testToken).SetVal(int64(1))

	unlock, err := l.Lock(context.Background(), "PHARMACY:pharmacy_001")
	require.NoError(t, err)
	unlock()

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisLocker_RedisError(t *testing.T) {
	l, mock := newTestRedisLocker(t)
	key := redisKeyPrefix + "DOCTOR:doctor_002"

	mock.ExpectSetNX(key, testToken, 5*time.Second).SetErr(errors.New("connection refused"))

	unlock, err := l.Lock(context.Background(), "DOCTOR:doctor_002")
	assert.Nil(t, unlock)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisLocker_ContextDone(t *testing.T) {
	l, mock := newTestRedisLocker(t)
	key := redisKeyPrefix + "DOCTOR:doctor_003"

	ctx, cancel := context.WithCancel(context.Background())
	mock.ExpectSetNX(key, testToken, 5*time.Second).SetVal(false)
	cancel()

	unlock, err := l.Lock(ctx, "DOCTOR:doctor_003")
	assert.Nil(t, unlock)
	assert.ErrorIs(t, err, ErrNotAcquired)
}
