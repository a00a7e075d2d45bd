package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
)

var ErrLockTimeout = errors.New("lock wait timed out")

// releaseScript deletes the key only if it still holds our token, so an
// expired lock taken over by someone else is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisOptions struct {
	Prefix   string
	TTL      time.Duration
	Wait     time.Duration
	Interval time.Duration
}

// RedisLocker takes a lock with SET NX and a TTL. The TTL bounds how long a
// crashed holder can block the key.
type RedisLocker struct {
	client *redis.Client
	opts   RedisOptions
	log    logger.Logger
}

func NewRedisLocker(client *redis.Client, opts RedisOptions, log logger.Logger) *RedisLocker {
	if opts.TTL <= 0 {
		opts.TTL = 10 * time.Second
	}
	if opts.Wait <= 0 {
		opts.Wait = 5 * time.Second
	}
	if opts.Interval <= 0 {
		opts.Interval = 50 * time.Millisecond
	}

	return &RedisLocker{client: client, opts: opts, log: log}
}

func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	key = l.opts.Prefix + key
	token := uuid.NewString()

	waitCtx, cancel := context.WithTimeout(ctx, l.opts.Wait)
	defer cancel()

	ticker := time.NewTicker(l.opts.Interval)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(waitCtx, key, token, l.opts.TTL).Result()
		if err != nil && waitCtx.Err() == nil {
			return nil, fmt.Errorf("acquire %s: %w: %w", key, domain.ErrStoreUnavailable, err)
		}
		if ok {
			return l.unlockFunc(ctx, key, token), nil
		}

		select {
		case <-waitCtx.Done():
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, fmt.Errorf("acquire %s: %w", key, ErrLockTimeout)
		case <-ticker.C:
		}
	}
}

func (l *RedisLocker) unlockFunc(ctx context.Context, key, token string) func() {
	ctx = context.WithoutCancel(ctx)
	return func() {
		if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil {
			l.log.Warn("failed to release lock",
				logger.String("key", key),
				logger.String("error", err.Error()),
			)
		}
	}
}
