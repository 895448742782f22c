package scheduling

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	lockKeyPrefix = "slotlock:"
	lockTTL       = 10 * time.Second
	lockRetry     = 50 * time.Millisecond
)

// RedisSlotLocker serializes slot bookings across instances using SET NX
// with an owner token. The TTL bounds lock lifetime if a holder dies; the
// partial unique index on the ledger remains the last line of defense.
type RedisSlotLocker struct {
	Client *redis.Client
	Log    *zap.Logger
}

func NewRedisSlotLocker(client *redis.Client, logger *zap.Logger) *RedisSlotLocker {
	return &RedisSlotLocker{Client: client, Log: logger}
}

func (l *RedisSlotLocker) Acquire(ctx context.Context, key string) (func(), error) {
	redisKey := lockKeyPrefix + key
	token := uuid.NewString()

	for {
		acquired, err := l.Client.SetNX(ctx, redisKey, token, lockTTL).Result()
		if err != nil {
			return nil, ErrUnavailable("slot lock unavailable")
		}
		if acquired {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ErrUnavailable("timed out waiting for slot lock")
		case <-time.After(lockRetry):
		}
	}

	release := func() {
		// Delete only if we still own the lock.
		stored, err := l.Client.Get(context.Background(), redisKey).Result()
		if err != nil {
			if err != redis.Nil {
				l.Log.Warn("slot lock release failed", zap.String("key", key), zap.Error(err))
			}
			return
		}
		if stored != token {
			l.Log.Warn("slot lock ownership changed before release", zap.String("key", key))
			return
		}
		if err := l.Client.Del(context.Background(), redisKey).Err(); err != nil {
			l.Log.Warn("slot lock delete failed", zap.String("key", key), zap.Error(err))
		}
	}
	return release, nil
}
