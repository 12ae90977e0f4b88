package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kubelo1705/booking-system/internal/ports"
)

type RedisCacheAdapter struct {
	client *redis.Client
	logger *slog.Logger
	prefix string
}

func NewRedisCacheAdapter(addr, password string, db int, logger *slog.Logger) ports.CachePort {
	c := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db, PoolSize: 50})
	return NewRedisCacheAdapterWithClient(c, logger)
}

func NewRedisCacheAdapterWithClient(client *redis.Client, logger *slog.Logger) *RedisCacheAdapter {
	return &RedisCacheAdapter{
		client: client,
		logger: logger,
		prefix: "catalog-service:",
	}
}

func (r *RedisCacheAdapter) Get(ctx context.Context, key string, dest any) (bool, error) {
	val, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		r.logger.Debug("Cache miss", "key", key)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get error for key %s: %w", key, err)
	}
	return true, json.Unmarshal(val, dest)
}

func (r *RedisCacheAdapter) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal error for key %s: %w", key, err)
	}
	if err := r.client.Set(ctx, r.prefix+key, b, ttl).Err(); err != nil {
		return fmt.Errorf("cache set error for key %s: %w", key, err)
	}
	r.logger.Debug("Cache set", "key", key, "ttl", ttl, "size", len(b))
	return nil
}

func (r *RedisCacheAdapter) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	fullKeys := make([]string, len(keys))
	for i, key := range keys {
		fullKeys[i] = r.prefix + key
	}
	if err := r.client.Del(ctx, fullKeys...).Err(); err != nil {
		return fmt.Errorf("cache delete error for keys %v: %w", keys, err)
	}
	return nil
}

func (r *RedisCacheAdapter) AddMember(ctx context.Context, setKey string, members ...string) error {
	if len(members) == 0 {
		return nil
	}
	args := make([]interface{}, len(members))
	for i, member := range members {
		args[i] = member
	}
	if err := r.client.SAdd(ctx, r.prefix+setKey, args...).Err(); err != nil {
		return fmt.Errorf("cache sadd error for set %s: %w", setKey, err)
	}
	return nil
}

func (r *RedisCacheAdapter) Members(ctx context.Context, setKey string) ([]string, error) {
	members, err := r.client.SMembers(ctx, r.prefix+setKey).Result()
	if err != nil {
		return nil, fmt.Errorf("cache smembers error for set %s: %w", setKey, err)
	}
	return members, nil
}

func (r *RedisCacheAdapter) RemoveMember(ctx context.Context, setKey string, members ...string) error {
	if len(members) == 0 {
		return nil
	}
	args := make([]interface{}, len(members))
	for i, member := range members {
		args[i] = member
	}
	if err := r.client.SRem(ctx, r.prefix+setKey, args...).Err(); err != nil {
		return fmt.Errorf("cache srem error for set %s: %w", setKey, err)
	}
	return nil
}

func (r *RedisCacheAdapter) DeletePattern(ctx context.Context, pattern string) error {
	fullPattern := r.prefix + pattern

	keys, err := r.client.Keys(ctx, fullPattern).Result()
	if err != nil {
		return fmt.Errorf("cache keys error for pattern %s: %w", pattern, err)
	}
	if len(keys) == 0 {
		r.logger.Debug("No keys found for pattern", "pattern", pattern)
		return nil
	}

	deleted, err := r.client.Del(ctx, keys...).Result()
	if err != nil {
		return fmt.Errorf("cache delete pattern error for %s: %w", pattern, err)
	}
	r.logger.Info("Cache pattern delete", "pattern", pattern, "deleted_count", deleted)
	return nil
}

func (r *RedisCacheAdapter) Ping(ctx context.Context) error {
	if _, err := r.client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisCacheAdapter) Close() error {
	return r.client.Close()
}
