package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestRoomLockKey(t *testing.T) {
	require.Equal(t, "booking:lock:room:101", RoomLockKey(101))
}

func TestAcquireLockNilCache(t *testing.T) {
	release, err := AcquireLock(context.Background(), nil, "k", time.Second)
	require.NoError(t, err)
	require.NoError(t, release(context.Background()))
}

func TestAcquireLock(t *testing.T) {
	t.Cleanup(func() { newToken = uuid.NewString })
	newToken = func() string { return "tok" }

	var evalKeys []string
	var evalArgs []any
	c := &FakeCache{
		SetNXFn: func(ctx context.Context, key string, value any, exp time.Duration) *redis.BoolCmd {
			require.Equal(t, "booking:lock:room:7", key)
			require.Equal(t, "tok", value)
			require.Equal(t, 3*time.Second, exp)
			return redis.NewBoolResult(true, nil)
		},
		EvalFn: func(ctx context.Context, script string, keys []string, args ...any) *redis.Cmd {
			require.Equal(t, releaseScript, script)
			evalKeys = keys
			evalArgs = args
			return redis.NewCmdResult(int64(1), nil)
		},
	}

	release, err := AcquireLock(context.Background(), c, RoomLockKey(7), 3*time.Second)
	require.NoError(t, err)
	require.NoError(t, release(context.Background()))
	require.Equal(t, []string{"booking:lock:room:7"}, evalKeys)
	require.Equal(t, []any{"tok"}, evalArgs)
}

func TestAcquireLockErrors(t *testing.T) {
	held := &FakeCache{SetNXFn: func(context.Context, string, any, time.Duration) *redis.BoolCmd {
		return redis.NewBoolResult(false, nil)
	}}
	_, err := AcquireLock(context.Background(), held, "k", time.Second)
	require.ErrorIs(t, err, ErrLockHeld)

	broken := &FakeCache{SetNXFn: func(context.Context, string, any, time.Duration) *redis.BoolCmd {
		return redis.NewBoolResult(false, errors.New("down"))
	}}
	_, err = AcquireLock(context.Background(), broken, "k", time.Second)
	require.ErrorContains(t, err, "acquire lock k")

	failRelease := &FakeCache{
		SetNXFn: func(context.Context, string, any, time.Duration) *redis.BoolCmd { return redis.NewBoolResult(true, nil) },
		EvalFn: func(context.Context, string, []string, ...any) *redis.Cmd {
			return redis.NewCmdResult(nil, errors.New("gone"))
		},
	}
	release, err := AcquireLock(context.Background(), failRelease, "k", time.Second)
	require.NoError(t, err)
	require.ErrorContains(t, release(context.Background()), "release lock k")
}
