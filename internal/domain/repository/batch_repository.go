package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/ressKim-io/question-prism/internal/domain/entity"
)

// BatchRepository defines the interface for batch job storage
type BatchRepository interface {
	// Save creates or replaces a batch
	Save(ctx context.Context, batch *entity.Batch) error

	// GetByID retrieves a batch by its ID, returning nil when it does not exist
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Batch, error)

	// Delete removes a batch
	Delete(ctx context.Context, id uuid.UUID) error
}
