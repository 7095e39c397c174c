package locker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix       = "scheduler:lock:"
	defaultRetryInterval = 50 * time.Millisecond
)

// Снимаем блокировку, только если она все еще наша
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Redis распределенные блокировки SET NX PX для нескольких инстансов сервиса.
// Блокировка держится до завершения транзакции, TTL страхует от упавшего владельца.
type Redis struct {
	client         redis.Cmdable
	tx             TxRunner
	ttl            time.Duration
	acquireTimeout time.Duration
	retryInterval  time.Duration
}

func NewRedis(client redis.Cmdable, tx TxRunner, ttl, acquireTimeout time.Duration) *Redis {
	return &Redis{
		client:         client,
		tx:             tx,
		ttl:            ttl,
		acquireTimeout: acquireTimeout,
		retryInterval:  defaultRetryInterval,
	}
}

func (r *Redis) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	redisKey := redisKeyPrefix + key
	token := uuid.NewString()

	if err := r.acquire(ctx, redisKey, token); err != nil {
		return err
	}
	defer func() {
		// Контекст запроса может быть уже отменен, снимаем блокировку в отдельном контексте
		releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = releaseScript.Run(releaseCtx, r.client, []string{redisKey}, token).Err()
	}()

	return r.tx.DoSerializable(ctx, fn)
}

func (r *Redis) acquire(ctx context.Context, key, token string) error {
	deadline := time.Now().Add(r.acquireTimeout)

	for {
		ok, err := r.client.SetNX(ctx, key, token, r.ttl).Result()
		if err != nil {
			return fmt.Errorf("%w: SETNX %s: %w", ErrLock, key, err)
		}
		if ok {
			return nil
		}

		if time.Now().After(deadline) {
			return fmt.Errorf("%w: %s", ErrLockTimeout, key)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.retryInterval):
		}
	}
}
