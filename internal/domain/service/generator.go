package service

import "context"

// Message is a single chat turn sent to a text generator
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GenerateOptions tunes a single generation call
type GenerateOptions struct {
	MaxTokens   int
	Temperature float64
}

// TextGenerator produces text from a conversation
type TextGenerator interface {
	Generate(ctx context.Context, messages []Message, opts GenerateOptions) (string, error)

	// ModelName returns the model used for generation
	ModelName() string
}
