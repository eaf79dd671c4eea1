package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis"
)

// Redis adapts a redis client to the cache port.
type Redis struct {
	cli *redis.Client
}

// NewRedis connects to the given address and verifies the connection.
func NewRedis(addr string) (*Redis, error) {
	cli := redis.NewClient(&redis.Options{Addr: addr})
	if err := cli.Ping().Err(); err != nil {
		return nil, err
	}
	return &Redis{cli: cli}, nil
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := r.cli.WithContext(ctx).Get(key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.cli.WithContext(ctx).Set(key, value, ttl).Err()
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.cli.WithContext(ctx).Del(key).Err()
}

// Close releases the underlying connection pool.
func (r *Redis) Close() error {
	return r.cli.Close()
}

var _ Cache = (*Redis)(nil)
