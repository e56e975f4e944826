package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ressKim-io/question-prism/internal/domain/entity"
	"github.com/ressKim-io/question-prism/internal/domain/repository"
)

type entry struct {
	batch     entity.Batch
	expiresAt time.Time
}

type batchRepository struct {
	mu      sync.RWMutex
	ttl     time.Duration
	batches map[uuid.UUID]entry
	now     func() time.Time
}

// NewBatchRepository creates an in-process batch store. Entries expire ttl
// after their last save; a non-positive ttl keeps them forever.
func NewBatchRepository(ttl time.Duration) repository.BatchRepository {
	return &batchRepository{
		ttl:     ttl,
		batches: make(map[uuid.UUID]entry),
		now:     time.Now,
	}
}

func (r *batchRepository) Save(_ context.Context, batch *entity.Batch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.evictExpired()

	e := entry{batch: clone(batch)}
	if r.ttl > 0 {
		e.expiresAt = r.now().Add(r.ttl)
	}
	r.batches[batch.ID] = e
	return nil
}

func (r *batchRepository) GetByID(_ context.Context, id uuid.UUID) (*entity.Batch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.batches[id]
	if !ok || r.expired(e) {
		return nil, nil
	}
	b := clone(&e.batch)
	return &b, nil
}

func (r *batchRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.batches, id)
	return nil
}

func (r *batchRepository) expired(e entry) bool {
	return !e.expiresAt.IsZero() && r.now().After(e.expiresAt)
}

// evictExpired must be called with the write lock held
func (r *batchRepository) evictExpired() {
	for id, e := range r.batches {
		if r.expired(e) {
			delete(r.batches, id)
		}
	}
}

func clone(b *entity.Batch) entity.Batch {
	c := *b
	c.Questions = append([]string(nil), b.Questions...)
	c.Rows = append([]entity.BatchRow(nil), b.Rows...)
	return c
}
