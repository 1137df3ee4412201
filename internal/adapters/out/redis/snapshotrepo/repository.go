// Package snapshotrepo stores store snapshots in Redis, one string value per key.
package snapshotrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"setralog/internal/core/ports"
	"setralog/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces snapshot keys in a shared Redis database.
const DefaultPrefix = "setralog:snapshot:"

var _ ports.SnapshotMirror = (*RedisSnapshotRepository)(nil)

// RedisSnapshotRepository implements ports.SnapshotMirror on a go-redis client.
type RedisSnapshotRepository struct {
	client *redis.Client
	prefix string
}

// NewRedisSnapshotRepository connects to addr and verifies the connection with PING.
func NewRedisSnapshotRepository(addr, password string, db int) (*RedisSnapshotRepository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisSnapshotRepositoryFromClient(client), nil
}

// NewRedisSnapshotRepositoryFromClient wraps an existing client.
func NewRedisSnapshotRepositoryFromClient(client *redis.Client) *RedisSnapshotRepository {
	return &RedisSnapshotRepository{client: client, prefix: DefaultPrefix}
}

// Save replaces the value stored for key. Snapshots never expire.
func (r *RedisSnapshotRepository) Save(ctx context.Context, key string, payload []byte) error {
	if key == "" {
		return errs.NewValueIsRequiredError("key")
	}
	return r.client.Set(ctx, r.prefix+key, payload, 0).Err()
}

// Load returns the value stored for key.
func (r *RedisSnapshotRepository) Load(ctx context.Context, key string) ([]byte, error) {
	payload, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, errs.NewObjectNotFoundErrorWithCause("snapshot", key, err)
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// Close closes the underlying client.
func (r *RedisSnapshotRepository) Close() error {
	return r.client.Close()
}
