package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisSnapshotter keeps each snapshot as a plain string value.
type RedisSnapshotter struct {
	client *redis.Client
	prefix string
}

func NewRedisSnapshotter(client *redis.Client, prefix string) *RedisSnapshotter {
	return &RedisSnapshotter{client: client, prefix: prefix}
}

func (r *RedisSnapshotter) Load(ctx context.Context, namespace string) ([]byte, error) {
	data, err := r.client.Get(ctx, r.prefix+namespace).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return data, nil
}

func (r *RedisSnapshotter) Save(ctx context.Context, namespace string, data []byte) error {
	if err := r.client.Set(ctx, r.prefix+namespace, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}
