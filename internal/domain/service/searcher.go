package service

import (
	"context"

	"github.com/ressKim-io/question-prism/internal/domain/entity"
)

// Searcher queries a web search provider
type Searcher interface {
	// Name identifies the provider in reports and logs
	Name() string

	// Search returns at most the provider's configured number of results
	Search(ctx context.Context, query string) ([]entity.SearchResult, error)
}

// NotConfiguredError is returned by a provider that cannot run until the
// operator supplies missing settings. Message is shown to the user as is.
type NotConfiguredError struct {
	Message string
}

func (e *NotConfiguredError) Error() string {
	return e.Message
}
