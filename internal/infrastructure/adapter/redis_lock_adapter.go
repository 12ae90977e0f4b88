package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kubelo1705/booking-system/internal/ports"
)

type RedisLockAdapter struct {
	client *redis.Client
	prefix string
}

func NewRedisLockAdapter(addr, password string, db int) ports.LockPort {
	c := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db, PoolSize: 50})
	return NewRedisLockAdapterWithClient(c)
}

func NewRedisLockAdapterWithClient(client *redis.Client) *RedisLockAdapter {
	return &RedisLockAdapter{client: client, prefix: "catalog-service:"}
}

func (r *RedisLockAdapter) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := r.client.SetNX(ctx, r.prefix+key, fmt.Sprintf("%d", time.Now().UnixNano()), ttl).Result()
	return ok, err
}

func (r *RedisLockAdapter) Release(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.prefix+key).Err()
}

func (r *RedisLockAdapter) Close() error {
	return r.client.Close()
}
