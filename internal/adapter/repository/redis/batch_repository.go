package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/ressKim-io/question-prism/internal/domain/entity"
	"github.com/ressKim-io/question-prism/internal/domain/repository"
)

const keyPrefix = "qprism:batch:"

type batchRepository struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewBatchRepository creates a batch store backed by Redis. Every save
// refreshes the key expiry to ttl.
func NewBatchRepository(client *goredis.Client, ttl time.Duration) repository.BatchRepository {
	return &batchRepository{client: client, ttl: ttl}
}

func (r *batchRepository) Save(ctx context.Context, batch *entity.Batch) error {
	data, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("failed to marshal batch: %w", err)
	}

	if err := r.client.Set(ctx, key(batch.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save batch: %w", err)
	}
	return nil
}

func (r *batchRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Batch, error) {
	data, err := r.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get batch: %w", err)
	}

	var batch entity.Batch
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("failed to unmarshal batch: %w", err)
	}
	return &batch, nil
}

func (r *batchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.client.Del(ctx, key(id)).Err()
}

func key(id uuid.UUID) string {
	return keyPrefix + id.String()
}
