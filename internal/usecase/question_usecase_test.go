package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ressKim-io/question-prism/internal/domain/entity"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

// MockRecognizer is a mock implementation of TextRecognizer
type MockRecognizer struct {
	mock.Mock
}

func (m *MockRecognizer) Recognize(ctx context.Context, image []byte) (string, error) {
	args := m.Called(ctx, image)
	return args.String(0), args.Error(1)
}

func answerEverything(m *pipelineMocks, question, label string) {
	m.classifier.On("Classify", mock.Anything, question).Return(modelSays(question, label), nil)
	m.tavily.On("Search", mock.Anything, question).Return([]entity.SearchResult{}, nil)
	m.ddg.On("Search", mock.Anything, question).Return([]entity.SearchResult{}, nil)
	m.generator.On("Generate", mock.Anything, mock.Anything, mock.Anything).
		Return("- Question Category: "+label+"\n- Comprehensive Answer: answer", nil)
}

func TestQuestionUsecase_Ask(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		p, m := newTestPipeline(true)
		uc := NewQuestionUsecase(p, new(MockRecognizer), zap.NewNop())
		answerEverything(m, "Define entropy.", "Definition")

		output, err := uc.Ask(context.Background(), &QuestionInput{Question: "  Define entropy.  "})

		require.NoError(t, err)
		assert.Equal(t, "Define entropy.", output.Question)
		assert.Equal(t, "Definition", output.Classification.Category)
		assert.Equal(t, "Comprehensive Answer: answer", output.Answer)
		assert.Len(t, output.Searches, 2)
		assert.NotEmpty(t, output.CreatedAt)
	})

	t.Run("empty question makes no calls", func(t *testing.T) {
		p, m := newTestPipeline(true)
		uc := NewQuestionUsecase(p, new(MockRecognizer), zap.NewNop())

		for _, q := range []string{"", "   ", "\n\t"} {
			output, err := uc.Ask(context.Background(), &QuestionInput{Question: q})

			assert.Nil(t, output)
			assert.ErrorIs(t, err, ErrEmptyQuestion)
		}
		m.classifier.AssertNotCalled(t, "Classify", mock.Anything, mock.Anything)
		m.generator.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestQuestionUsecase_Classify(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		p, m := newTestPipeline(true)
		uc := NewQuestionUsecase(p, new(MockRecognizer), zap.NewNop())
		q := "Compare DNA and RNA"
		m.classifier.On("Classify", mock.Anything, q).Return(modelSays(q, "**Differentiation**"), nil)

		output, err := uc.Classify(context.Background(), &QuestionInput{Question: q})

		require.NoError(t, err)
		assert.Equal(t, "Differentiation", output.Category)
		assert.True(t, output.Valid)
		assert.Empty(t, output.Override)
		m.tavily.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})

	t.Run("empty question", func(t *testing.T) {
		p, m := newTestPipeline(true)
		uc := NewQuestionUsecase(p, new(MockRecognizer), zap.NewNop())

		_, err := uc.Classify(context.Background(), &QuestionInput{Question: " "})

		assert.ErrorIs(t, err, ErrEmptyQuestion)
		m.classifier.AssertNotCalled(t, "Classify", mock.Anything, mock.Anything)
	})
}

func TestQuestionUsecase_Scan(t *testing.T) {
	t.Run("answers extracted text", func(t *testing.T) {
		p, m := newTestPipeline(true)
		recognizer := new(MockRecognizer)
		uc := NewQuestionUsecase(p, recognizer, zap.NewNop())
		recognizer.On("Recognize", mock.Anything, pngHeader).Return("What is 7 x 8?\n", nil)
		answerEverything(m, "What is 7 x 8?", "Mathematical")

		output, err := uc.Scan(context.Background(), pngHeader)

		require.NoError(t, err)
		assert.Equal(t, "What is 7 x 8?", output.ExtractedText)
		assert.Equal(t, "Mathematical", output.Answer.Classification.Category)
	})

	t.Run("no text detected", func(t *testing.T) {
		p, m := newTestPipeline(true)
		recognizer := new(MockRecognizer)
		uc := NewQuestionUsecase(p, recognizer, zap.NewNop())
		recognizer.On("Recognize", mock.Anything, pngHeader).Return("  \n ", nil)

		output, err := uc.Scan(context.Background(), pngHeader)

		assert.Nil(t, output)
		assert.ErrorIs(t, err, ErrNoTextDetected)
		m.classifier.AssertNotCalled(t, "Classify", mock.Anything, mock.Anything)
	})

	t.Run("recognizer error", func(t *testing.T) {
		p, _ := newTestPipeline(true)
		recognizer := new(MockRecognizer)
		uc := NewQuestionUsecase(p, recognizer, zap.NewNop())
		recognizer.On("Recognize", mock.Anything, pngHeader).Return("", errors.New("tesseract missing"))

		_, err := uc.Scan(context.Background(), pngHeader)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "tesseract missing")
	})

	t.Run("rejects non image data", func(t *testing.T) {
		p, _ := newTestPipeline(true)
		recognizer := new(MockRecognizer)
		uc := NewQuestionUsecase(p, recognizer, zap.NewNop())

		_, err := uc.Scan(context.Background(), []byte("plain text, not an image"))

		assert.ErrorIs(t, err, ErrUnsupportedFile)
		recognizer.AssertNotCalled(t, "Recognize", mock.Anything, mock.Anything)
	})
}

func TestQuestionUsecase_Categories(t *testing.T) {
	p, _ := newTestPipeline(true)
	uc := NewQuestionUsecase(p, new(MockRecognizer), zap.NewNop())

	categories := uc.Categories()

	require.Len(t, categories, 8)
	assert.Equal(t, entity.CategoryMathematical, categories[0].Name)
	assert.Equal(t, entity.CategoryInference, categories[7].Name)
}
