// Package lock provides a per-application lock shared between server
// instances through Redis.
package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"scholarship/engine"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Client is the subset of *redis.Client the locker needs.
type Client interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// Deletes the key only while it still holds our token.
const releaseScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0`

type RedisLocker struct {
	client     Client
	ttl        time.Duration
	retryDelay time.Duration
	logger     zerolog.Logger
}

var _ engine.Locker = (*RedisLocker)(nil)

func NewRedisLocker(client Client, ttl time.Duration, logger zerolog.Logger) *RedisLocker {
	return &RedisLocker{
		client:     client,
		ttl:        ttl,
		retryDelay: 25 * time.Millisecond,
		logger:     logger,
	}
}

func key(applicationID int) string {
	return fmt.Sprintf("scholarship:application-lock:%d", applicationID)
}

// Lock blocks until the application lock is acquired or ctx is done. The key
// expires after ttl so a crashed holder cannot block an application forever.
func (l *RedisLocker) Lock(ctx context.Context, applicationID int) (func(), error) {
	token := uuid.NewString()
	k := key(applicationID)
	for {
		acquired, err := l.client.SetNX(ctx, k, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire %s: %w", k, err)
		}
		if acquired {
			return l.releaser(k, token), nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(l.retryDelay):
		}
	}
}

func (l *RedisLocker) releaser(k string, token string) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := l.client.Eval(ctx, releaseScript, []string{k}, token).Err(); err != nil {
				l.logger.Warn().Err(err).Str("key", k).Msg("failed to release application lock")
			}
		})
	}
}
