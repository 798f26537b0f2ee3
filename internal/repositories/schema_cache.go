package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-text2sql/internal/logger"
)

// ErrCacheMiss is returned when no description is cached.
var ErrCacheMiss = errors.New("schema description not cached")

// SchemaCacheRepository caches rendered schema descriptions in Redis
type SchemaCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for cached descriptions
	key    string
}

// NewSchemaCacheRepository creates a cache scoped to one target database.
func NewSchemaCacheRepository(client *redis.Client, database string, expiration time.Duration) *SchemaCacheRepository {
	return &SchemaCacheRepository{
		client: client,
		exp:    expiration,
		key:    fmt.Sprintf("schema_description:%s", database),
	}
}

func (r *SchemaCacheRepository) Get(ctx context.Context) (string, error) {
	val, err := r.client.Get(ctx, r.key).Result()

	logger.Log.Infow(
		"key", r.key,
		"hit", err == nil,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r *SchemaCacheRepository) Set(ctx context.Context, description string) error {
	err := r.client.Set(ctx, r.key, description, r.exp).Err()

	logger.Log.Infow(
		"key", r.key,
		"size", len(description),
		"error", err,
	)

	return err
}

// Invalidate drops the cached description after a schema change.
func (r *SchemaCacheRepository) Invalidate(ctx context.Context) error {
	err := r.client.Del(ctx, r.key).Err()

	logger.Log.Infow(
		"key", r.key,
		"result", "invalidated",
		"error", err,
	)

	return err
}
