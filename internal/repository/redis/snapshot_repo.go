package redis

import (
	"context"
	"errors"
	"fmt"

	"hirewise-backend/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "hirewise:"

type snapshotRepo struct {
	client *goredis.Client
}

func NewSnapshotRepository(client *goredis.Client) domain.SnapshotRepository {
	return &snapshotRepo{client: client}
}

func (r *snapshotRepo) Save(ctx context.Context, key string, data []byte) error {
	// No expiry: the slot lives until overwritten
	if err := r.client.Set(ctx, keyPrefix+key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return data, nil
}
