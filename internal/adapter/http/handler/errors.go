package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ressKim-io/question-prism/internal/usecase"
)

// ErrorResponse represents a structured error response
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
}

// MapUsecaseError maps usecase errors to HTTP error responses.
// It provides consistent error handling across all handlers.
func MapUsecaseError(err error) ErrorResponse {
	switch {
	case errors.Is(err, usecase.ErrEmptyQuestion):
		return ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Code:       "EMPTY_QUESTION",
			Message:    "Please enter a valid question.",
		}
	case errors.Is(err, usecase.ErrNoTextDetected):
		return ErrorResponse{
			StatusCode: http.StatusUnprocessableEntity,
			Code:       "NO_TEXT_DETECTED",
			Message:    "No text detected in the image.",
		}
	case errors.Is(err, usecase.ErrNoQuestions):
		return ErrorResponse{
			StatusCode: http.StatusUnprocessableEntity,
			Code:       "NO_QUESTIONS",
			Message:    "No questions found in the uploaded file.",
		}
	case errors.Is(err, usecase.ErrUnsupportedFile):
		return ErrorResponse{
			StatusCode: http.StatusUnsupportedMediaType,
			Code:       "UNSUPPORTED_FILE",
			Message:    "unsupported file type",
		}
	case errors.Is(err, usecase.ErrBatchNotFound):
		return ErrorResponse{
			StatusCode: http.StatusNotFound,
			Code:       "NOT_FOUND",
			Message:    "batch not found",
		}
	case errors.Is(err, usecase.ErrBatchNotFinished):
		return ErrorResponse{
			StatusCode: http.StatusConflict,
			Code:       "CONFLICT",
			Message:    "batch is still running",
		}
	case errors.Is(err, usecase.ErrInvalidRequest):
		return ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Code:       "INVALID_REQUEST",
			Message:    "invalid request",
		}
	default:
		return ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Code:       "INTERNAL_ERROR",
			Message:    "internal server error",
		}
	}
}

// HandleUsecaseError handles a usecase error by sending an appropriate HTTP response.
// It maps the error to an HTTP status and sends a JSON error response.
func HandleUsecaseError(c *gin.Context, err error) {
	errResp := MapUsecaseError(err)
	if errResp.StatusCode >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	respondError(c, errResp.StatusCode, errResp.Code, errResp.Message)
}

// HandleInvalidUUID handles an invalid UUID parameter error.
func HandleInvalidUUID(c *gin.Context, paramName string) {
	respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid "+paramName)
}

// HandleInvalidRequest handles a generic invalid request error.
func HandleInvalidRequest(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, "INVALID_REQUEST", message)
}
