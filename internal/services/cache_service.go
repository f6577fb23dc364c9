package services

import (
	"context"
	"time"
)

// CacheService is the slice of the cache the repositories need: marshal a
// value under a key, read it back, and drop keys when the underlying
// document changes. Implementations must treat a missing key as an error.
type CacheService interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
}
