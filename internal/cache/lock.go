package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrLockHeld 表示鎖已被其他請求持有
var ErrLockHeld = errors.New("lock held")

// 只有持有者 token 相符才刪除
const releaseScript = `if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0`

var newToken = uuid.NewString

// ReleaseFunc 釋放 AcquireLock 取得的鎖
type ReleaseFunc func(ctx context.Context) error

// RoomLockKey 回傳房間訂房鎖的 key
func RoomLockKey(roomNumber int) string {
	return fmt.Sprintf("booking:lock:room:%d", roomNumber)
}

// AcquireLock 以 SET NX PX 取得鎖，c 為 nil 時不上鎖
func AcquireLock(ctx context.Context, c Cache, key string, ttl time.Duration) (ReleaseFunc, error) {
	if c == nil {
		return func(context.Context) error { return nil }, nil
	}

	token := newToken()
	ok, err := c.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", key, err)
	}
	if !ok {
		return nil, ErrLockHeld
	}

	return func(ctx context.Context) error {
		if err := c.Eval(ctx, releaseScript, []string{key}, token).Err(); err != nil {
			return fmt.Errorf("release lock %s: %w", key, err)
		}
		return nil
	}, nil
}
