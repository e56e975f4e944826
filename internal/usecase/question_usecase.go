package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ressKim-io/question-prism/internal/domain/entity"
	"github.com/ressKim-io/question-prism/internal/domain/service"
	"github.com/ressKim-io/question-prism/internal/infrastructure/metrics"
)

// Error definitions for question and batch usecases
var (
	ErrEmptyQuestion    = errors.New("please enter a valid question")
	ErrNoTextDetected   = errors.New("no text detected in the image")
	ErrNoQuestions      = errors.New("no questions found in the file")
	ErrUnsupportedFile  = errors.New("unsupported file type")
	ErrBatchNotFound    = errors.New("batch not found")
	ErrBatchNotFinished = errors.New("batch is still running")
	ErrInvalidRequest   = errors.New("invalid request")
)

// QuestionInput represents a single question submitted for answering
type QuestionInput struct {
	Question string `json:"question" binding:"max=4000"`
}

// ClassificationOutput represents the output of the classification step
type ClassificationOutput struct {
	Question string `json:"question"`
	Category string `json:"category"`
	Valid    bool   `json:"valid"`
	Override string `json:"override,omitempty"`
	Raw      string `json:"raw,omitempty"`
}

// SearchOutput represents one provider's contribution to an answer
type SearchOutput struct {
	Provider string                `json:"provider"`
	Summary  string                `json:"summary"`
	Results  []entity.SearchResult `json:"results"`
	Failed   bool                  `json:"failed"`
}

// AnswerOutput represents a synthesized answer
type AnswerOutput struct {
	AnswerID       uuid.UUID             `json:"answer_id"`
	Question       string                `json:"question"`
	Classification *ClassificationOutput `json:"classification"`
	Answer         string                `json:"answer"`
	Text           string                `json:"text"`
	Degraded       bool                  `json:"degraded"`
	Searches       []*SearchOutput       `json:"searches"`
	CreatedAt      string                `json:"created_at"`
}

// ScanOutput represents the result of answering a question read from an image
type ScanOutput struct {
	ExtractedText string        `json:"extracted_text"`
	Answer        *AnswerOutput `json:"answer"`
}

// QuestionUsecase defines the interface for single question business logic
type QuestionUsecase interface {
	Ask(ctx context.Context, input *QuestionInput) (*AnswerOutput, error)
	Classify(ctx context.Context, input *QuestionInput) (*ClassificationOutput, error)
	Scan(ctx context.Context, image []byte) (*ScanOutput, error)
	Categories() []entity.CategoryInfo
}

type questionUsecase struct {
	pipeline   *Pipeline
	recognizer service.TextRecognizer
	logger     *zap.Logger
}

// NewQuestionUsecase creates a new question usecase
func NewQuestionUsecase(pipeline *Pipeline, recognizer service.TextRecognizer, logger *zap.Logger) QuestionUsecase {
	return &questionUsecase{
		pipeline:   pipeline,
		recognizer: recognizer,
		logger:     logger,
	}
}

func (u *questionUsecase) Ask(ctx context.Context, input *QuestionInput) (*AnswerOutput, error) {
	question, ok := entity.NormalizeQuestion(input.Question)
	if !ok {
		return nil, ErrEmptyQuestion
	}

	return toAnswerOutput(u.pipeline.Run(ctx, question)), nil
}

func (u *questionUsecase) Classify(ctx context.Context, input *QuestionInput) (*ClassificationOutput, error) {
	question, ok := entity.NormalizeQuestion(input.Question)
	if !ok {
		return nil, ErrEmptyQuestion
	}

	return toClassificationOutput(u.pipeline.Classify(ctx, question, "interactive")), nil
}

func (u *questionUsecase) Scan(ctx context.Context, image []byte) (*ScanOutput, error) {
	if !isSupportedImage(image) {
		return nil, ErrUnsupportedFile
	}

	start := time.Now()
	text, err := u.recognizer.Recognize(ctx, image)
	metrics.StageDuration.WithLabelValues("ocr").Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("failed to recognize text: %w", err)
	}

	question, ok := entity.NormalizeQuestion(text)
	if !ok {
		return nil, ErrNoTextDetected
	}

	u.logger.Debug("text extracted from image", zap.Int("chars", len(question)))

	return &ScanOutput{
		ExtractedText: question,
		Answer:        toAnswerOutput(u.pipeline.Run(ctx, question)),
	}, nil
}

func (u *questionUsecase) Categories() []entity.CategoryInfo {
	return entity.Categories
}

func isSupportedImage(data []byte) bool {
	switch http.DetectContentType(data) {
	case "image/jpeg", "image/png":
		return true
	default:
		return false
	}
}

func toClassificationOutput(c *entity.Classification) *ClassificationOutput {
	return &ClassificationOutput{
		Question: c.Question,
		Category: c.Label(),
		Valid:    c.Valid,
		Override: c.Override,
		Raw:      c.Raw,
	}
}

func toAnswerOutput(a *entity.Answer) *AnswerOutput {
	searches := make([]*SearchOutput, len(a.Searches))
	for i, s := range a.Searches {
		searches[i] = &SearchOutput{
			Provider: s.Provider,
			Summary:  s.Summary,
			Results:  s.Results,
			Failed:   s.Failed(),
		}
	}

	return &AnswerOutput{
		AnswerID:       a.ID,
		Question:       a.Question,
		Classification: toClassificationOutput(a.Classification),
		Answer:         a.Display,
		Text:           a.Text,
		Degraded:       a.Degraded,
		Searches:       searches,
		CreatedAt:      a.CreatedAt.Format(time.RFC3339),
	}
}
