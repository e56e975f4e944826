package service

import (
	"context"

	"github.com/ressKim-io/question-prism/internal/domain/entity"
)

// Classifier assigns a category to a question
type Classifier interface {
	// Classify classifies a single question. A non-nil error means the
	// classification backend could not be reached or answered with nothing
	// usable; malformed labels are reported through the result instead.
	Classify(ctx context.Context, question string) (*entity.Classification, error)
}
