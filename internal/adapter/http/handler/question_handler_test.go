package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ressKim-io/question-prism/internal/domain/entity"
	"github.com/ressKim-io/question-prism/internal/usecase"
)

// MockQuestionUsecase is a mock implementation of QuestionUsecase
type MockQuestionUsecase struct {
	mock.Mock
}

func (m *MockQuestionUsecase) Ask(ctx context.Context, input *usecase.QuestionInput) (*usecase.AnswerOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.AnswerOutput), args.Error(1)
}

func (m *MockQuestionUsecase) Classify(ctx context.Context, input *usecase.QuestionInput) (*usecase.ClassificationOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.ClassificationOutput), args.Error(1)
}

func (m *MockQuestionUsecase) Scan(ctx context.Context, image []byte) (*usecase.ScanOutput, error) {
	args := m.Called(ctx, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.ScanOutput), args.Error(1)
}

func (m *MockQuestionUsecase) Categories() []entity.CategoryInfo {
	args := m.Called()
	return args.Get(0).([]entity.CategoryInfo)
}

func setupQuestionRouter(h *QuestionHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/v1/categories", h.ListCategories)
	r.POST("/api/v1/questions", h.Ask)
	r.POST("/api/v1/questions/stream", h.Stream)
	r.POST("/api/v1/questions/classify", h.Classify)
	r.POST("/api/v1/images", h.Scan)
	return r
}

func sampleAnswer(question string) *usecase.AnswerOutput {
	return &usecase.AnswerOutput{
		AnswerID: uuid.New(),
		Question: question,
		Classification: &usecase.ClassificationOutput{
			Question: question,
			Category: "Definition",
			Valid:    true,
		},
		Answer:    "Comprehensive Answer: Entropy measures disorder.",
		Text:      "- Question Category: Definition\n- Comprehensive Answer: Entropy measures disorder.",
		CreatedAt: "2026-10-19T12:00:00Z",
	}
}

func postJSON(router *gin.Engine, target, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListCategories(t *testing.T) {
	mockUC := new(MockQuestionUsecase)
	router := setupQuestionRouter(NewQuestionHandler(mockUC, StreamOptions{ChunkSize: 20}))
	mockUC.On("Categories").Return(entity.Categories)

	req, _ := http.NewRequest("GET", "/api/v1/categories", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Mathematical"`)
	assert.Contains(t, w.Body.String(), `"name":"Inference"`)
}

func TestAsk_Success(t *testing.T) {
	mockUC := new(MockQuestionUsecase)
	router := setupQuestionRouter(NewQuestionHandler(mockUC, StreamOptions{ChunkSize: 20}))

	mockUC.On("Ask", mock.Anything, mock.MatchedBy(func(input *usecase.QuestionInput) bool {
		return input.Question == "Define entropy"
	})).Return(sampleAnswer("Define entropy"), nil)

	w := postJSON(router, "/api/v1/questions", `{"question": "Define entropy"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var response Response
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.True(t, response.Success)
	mockUC.AssertExpectations(t)
}

func TestAsk_EmptyQuestion(t *testing.T) {
	mockUC := new(MockQuestionUsecase)
	router := setupQuestionRouter(NewQuestionHandler(mockUC, StreamOptions{ChunkSize: 20}))
	mockUC.On("Ask", mock.Anything, mock.Anything).Return(nil, usecase.ErrEmptyQuestion)

	w := postJSON(router, "/api/v1/questions", `{"question": "   "}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response Response
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.False(t, response.Success)
	assert.Equal(t, "EMPTY_QUESTION", response.Error.Code)
	assert.Equal(t, "Please enter a valid question.", response.Error.Message)
}

func TestAsk_InvalidJSON(t *testing.T) {
	mockUC := new(MockQuestionUsecase)
	router := setupQuestionRouter(NewQuestionHandler(mockUC, StreamOptions{ChunkSize: 20}))

	w := postJSON(router, "/api/v1/questions", `{"question": 42}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUC.AssertNotCalled(t, "Ask", mock.Anything, mock.Anything)
}

func TestAsk_QuestionTooLong(t *testing.T) {
	mockUC := new(MockQuestionUsecase)
	router := setupQuestionRouter(NewQuestionHandler(mockUC, StreamOptions{ChunkSize: 20}))

	body, _ := json.Marshal(map[string]string{"question": strings.Repeat("a", 4001)})
	w := postJSON(router, "/api/v1/questions", string(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUC.AssertNotCalled(t, "Ask", mock.Anything, mock.Anything)
}

func TestStream_Success(t *testing.T) {
	mockUC := new(MockQuestionUsecase)
	router := setupQuestionRouter(NewQuestionHandler(mockUC, StreamOptions{ChunkSize: 20, Delay: time.Millisecond}))
	answer := sampleAnswer("Define entropy")
	mockUC.On("Ask", mock.Anything, mock.Anything).Return(answer, nil)

	w := postJSON(router, "/api/v1/questions/stream", `{"question": "Define entropy"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))

	body := w.Body.String()
	chunks := entity.Chunks(answer.Answer, 20)
	assert.Equal(t, 1, strings.Count(body, "event:classification"))
	assert.Equal(t, len(chunks), strings.Count(body, "event:chunk"))
	assert.Equal(t, 1, strings.Count(body, "event:done"))
	assert.Less(t, strings.Index(body, "event:classification"), strings.Index(body, "event:chunk"))
	assert.Less(t, strings.LastIndex(body, "event:chunk"), strings.Index(body, "event:done"))
	assert.Contains(t, body, "data:"+chunks[0])
}

func TestStream_EmptyQuestion(t *testing.T) {
	mockUC := new(MockQuestionUsecase)
	router := setupQuestionRouter(NewQuestionHandler(mockUC, StreamOptions{ChunkSize: 20}))
	mockUC.On("Ask", mock.Anything, mock.Anything).Return(nil, usecase.ErrEmptyQuestion)

	w := postJSON(router, "/api/v1/questions/stream", `{"question": ""}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotContains(t, w.Body.String(), "event:")
}

func TestClassify_Success(t *testing.T) {
	mockUC := new(MockQuestionUsecase)
	router := setupQuestionRouter(NewQuestionHandler(mockUC, StreamOptions{ChunkSize: 20}))
	mockUC.On("Classify", mock.Anything, mock.Anything).Return(&usecase.ClassificationOutput{
		Question: "Differentiate x^2",
		Category: "Differentiation",
		Valid:    true,
		Override: "differentiate",
	}, nil)

	w := postJSON(router, "/api/v1/questions/classify", `{"question": "Differentiate x^2"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"category":"Differentiation"`)
	assert.Contains(t, w.Body.String(), `"override":"differentiate"`)
}

func TestScan_Success(t *testing.T) {
	mockUC := new(MockQuestionUsecase)
	router := setupQuestionRouter(NewQuestionHandler(mockUC, StreamOptions{ChunkSize: 20}))
	image := []byte("\x89PNG\r\n\x1a\nfake")
	mockUC.On("Scan", mock.Anything, image).Return(&usecase.ScanOutput{
		ExtractedText: "Define entropy",
		Answer:        sampleAnswer("Define entropy"),
	}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest(t, "/api/v1/images", "image", "q.png", image))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"extracted_text":"Define entropy"`)
	mockUC.AssertExpectations(t)
}

func TestScan_MissingImage(t *testing.T) {
	mockUC := new(MockQuestionUsecase)
	router := setupQuestionRouter(NewQuestionHandler(mockUC, StreamOptions{ChunkSize: 20}))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest(t, "/api/v1/images", "", "", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUC.AssertNotCalled(t, "Scan", mock.Anything, mock.Anything)
}

func TestScan_NoTextDetected(t *testing.T) {
	mockUC := new(MockQuestionUsecase)
	router := setupQuestionRouter(NewQuestionHandler(mockUC, StreamOptions{ChunkSize: 20}))
	mockUC.On("Scan", mock.Anything, mock.Anything).Return(nil, usecase.ErrNoTextDetected)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest(t, "/api/v1/images", "image", "blank.png", []byte("\x89PNG\r\n\x1a\n")))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response Response
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "NO_TEXT_DETECTED", response.Error.Code)
}
