package cache

import (
	"context"
	"time"
)

// Cache is the minimal capability set the availability layer needs. Two
// implementations exist (in-process memory, remote redis); the choice is
// made once at startup, never per call.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
