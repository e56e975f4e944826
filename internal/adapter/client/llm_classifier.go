package client

import (
	"context"
	"errors"
	"strings"

	"github.com/ressKim-io/question-prism/internal/domain/entity"
	"github.com/ressKim-io/question-prism/internal/domain/service"
)

// LLMClassifier adapts a TextGenerator to the Classifier interface
type LLMClassifier struct {
	generator   service.TextGenerator
	temperature float64
	prompt      string
}

// NewLLMClassifier creates a new LLMClassifier
func NewLLMClassifier(generator service.TextGenerator, temperature float64) service.Classifier {
	return &LLMClassifier{
		generator:   generator,
		temperature: temperature,
		prompt:      ClassificationPrompt(),
	}
}

// Classify asks the model for a single category label. Labels outside the
// known set are returned with Valid unset.
func (c *LLMClassifier) Classify(ctx context.Context, question string) (*entity.Classification, error) {
	raw, err := c.generator.Generate(ctx, []service.Message{
		{Role: "system", Content: c.prompt},
		{Role: "user", Content: question},
	}, service.GenerateOptions{Temperature: c.temperature, MaxTokens: 20})
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(raw) == "" {
		return nil, errors.New("empty classification response")
	}

	result := &entity.Classification{
		Question: question,
		Raw:      strings.TrimSpace(raw),
	}
	if category, ok := parseLabel(raw); ok {
		result.Category = category
		result.Valid = true
	}

	return result, nil
}

// parseLabel accepts a bare label as well as answers such as
// "Category: Definition" or a label on its own line after some preamble.
func parseLabel(raw string) (entity.Category, bool) {
	if category, ok := entity.ParseCategory(raw); ok {
		return category, true
	}

	for _, line := range strings.Split(raw, "\n") {
		if idx := strings.LastIndex(line, ":"); idx >= 0 && idx < len(line)-1 {
			line = line[idx+1:]
		}
		line = strings.TrimLeft(strings.TrimSpace(line), "-0123456789. ")
		if category, ok := entity.ParseCategory(line); ok {
			return category, true
		}
	}
	return "", false
}
