package persistence

import (
	"context"
	"time"
)

// KeyValueStore is durable client-side storage for small string slots.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	// Set overwrites key. A zero ttl keeps the value until deleted.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
