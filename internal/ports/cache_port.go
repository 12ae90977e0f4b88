package ports

import (
	"context"
	"time"
)

// CachePort is the volatile key-value collaborator. Single-key operations are
// atomic on the backing store; there is no transaction spanning keys.
type CachePort interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	AddMember(ctx context.Context, setKey string, members ...string) error
	Members(ctx context.Context, setKey string) ([]string, error)
	RemoveMember(ctx context.Context, setKey string, members ...string) error
	DeletePattern(ctx context.Context, pattern string) error
	Ping(ctx context.Context) error
	Close() error
}
