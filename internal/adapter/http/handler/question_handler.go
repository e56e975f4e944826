package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ressKim-io/question-prism/internal/domain/entity"
	"github.com/ressKim-io/question-prism/internal/usecase"
)

// StreamOptions controls how an answer is revealed over server-sent events
type StreamOptions struct {
	ChunkSize int
	Delay     time.Duration
}

// QuestionHandler handles single question HTTP requests
type QuestionHandler struct {
	questionUC usecase.QuestionUsecase
	stream     StreamOptions
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionUC usecase.QuestionUsecase, stream StreamOptions) *QuestionHandler {
	return &QuestionHandler{questionUC: questionUC, stream: stream}
}

// ListCategories handles GET /api/v1/categories
func (h *QuestionHandler) ListCategories(c *gin.Context) {
	respondSuccess(c, http.StatusOK, h.questionUC.Categories())
}

// Ask handles POST /api/v1/questions
func (h *QuestionHandler) Ask(c *gin.Context) {
	var input usecase.QuestionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		HandleInvalidRequest(c, err.Error())
		return
	}

	output, err := h.questionUC.Ask(c.Request.Context(), &input)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}

// Stream handles POST /api/v1/questions/stream.
// The answer is computed first, then replayed in chunks followed by a
// final "done" event carrying the full answer.
func (h *QuestionHandler) Stream(c *gin.Context) {
	var input usecase.QuestionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		HandleInvalidRequest(c, err.Error())
		return
	}

	output, err := h.questionUC.Ask(c.Request.Context(), &input)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	sendEvent(c, "classification", output.Classification)

	ctx := c.Request.Context()
	for i, chunk := range entity.Chunks(output.Answer, h.stream.ChunkSize) {
		if i > 0 && h.stream.Delay > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(h.stream.Delay):
			}
		}
		sendEvent(c, "chunk", chunk)
	}

	sendEvent(c, "done", output)
}

// Classify handles POST /api/v1/questions/classify
func (h *QuestionHandler) Classify(c *gin.Context) {
	var input usecase.QuestionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		HandleInvalidRequest(c, err.Error())
		return
	}

	output, err := h.questionUC.Classify(c.Request.Context(), &input)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}

// Scan handles POST /api/v1/images
func (h *QuestionHandler) Scan(c *gin.Context) {
	upload, err := ReadUploadedFile(c, "image")
	if err != nil {
		respondUploadError(c, err)
		return
	}

	output, err := h.questionUC.Scan(c.Request.Context(), upload.Data)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}
