package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ressKim-io/question-prism/internal/usecase"
)

func TestMapUsecaseError(t *testing.T) {
	tests := []struct {
		name               string
		err                error
		expectedStatusCode int
		expectedCode       string
		expectedMessage    string
	}{
		{
			name:               "empty question",
			err:                usecase.ErrEmptyQuestion,
			expectedStatusCode: http.StatusBadRequest,
			expectedCode:       "EMPTY_QUESTION",
			expectedMessage:    "Please enter a valid question.",
		},
		{
			name:               "no text detected",
			err:                usecase.ErrNoTextDetected,
			expectedStatusCode: http.StatusUnprocessableEntity,
			expectedCode:       "NO_TEXT_DETECTED",
			expectedMessage:    "No text detected in the image.",
		},
		{
			name:               "no questions",
			err:                usecase.ErrNoQuestions,
			expectedStatusCode: http.StatusUnprocessableEntity,
			expectedCode:       "NO_QUESTIONS",
			expectedMessage:    "No questions found in the uploaded file.",
		},
		{
			name:               "unsupported file",
			err:                usecase.ErrUnsupportedFile,
			expectedStatusCode: http.StatusUnsupportedMediaType,
			expectedCode:       "UNSUPPORTED_FILE",
			expectedMessage:    "unsupported file type",
		},
		{
			name:               "batch not found",
			err:                usecase.ErrBatchNotFound,
			expectedStatusCode: http.StatusNotFound,
			expectedCode:       "NOT_FOUND",
			expectedMessage:    "batch not found",
		},
		{
			name:               "batch still running",
			err:                usecase.ErrBatchNotFinished,
			expectedStatusCode: http.StatusConflict,
			expectedCode:       "CONFLICT",
			expectedMessage:    "batch is still running",
		},
		{
			name:               "wrapped invalid request",
			err:                fmt.Errorf("%w: bad zip", usecase.ErrInvalidRequest),
			expectedStatusCode: http.StatusBadRequest,
			expectedCode:       "INVALID_REQUEST",
			expectedMessage:    "invalid request",
		},
		{
			name:               "invalid request",
			err:                usecase.ErrInvalidRequest,
			expectedStatusCode: http.StatusBadRequest,
			expectedCode:       "INVALID_REQUEST",
			expectedMessage:    "invalid request",
		},
		{
			name:               "unknown error",
			err:                errors.New("some unknown error"),
			expectedStatusCode: http.StatusInternalServerError,
			expectedCode:       "INTERNAL_ERROR",
			expectedMessage:    "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MapUsecaseError(tt.err)

			assert.Equal(t, tt.expectedStatusCode, result.StatusCode)
			assert.Equal(t, tt.expectedCode, result.Code)
			assert.Equal(t, tt.expectedMessage, result.Message)
		})
	}
}

func TestHandleUsecaseError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name               string
		err                error
		expectedStatusCode int
	}{
		{
			name:               "batch not found",
			err:                usecase.ErrBatchNotFound,
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name:               "internal error",
			err:                errors.New("internal"),
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleUsecaseError(c, tt.err)

			assert.Equal(t, tt.expectedStatusCode, w.Code)
		})
	}
}

func TestHandleInvalidUUID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleInvalidUUID(c, "batch id")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid batch id")
}

func TestHandleInvalidRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleInvalidRequest(c, "missing required field")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing required field")
}
