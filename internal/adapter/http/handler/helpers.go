package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrFileTooLarge is returned when an upload exceeds the body limit
var ErrFileTooLarge = errors.New("uploaded file is too large")

// UploadedFile is a multipart file read into memory
type UploadedFile struct {
	Filename string
	Data     []byte
}

// ReadUploadedFile reads the multipart form field into memory.
// Returns an error if the field is missing or the body limit was hit.
func ReadUploadedFile(c *gin.Context, field string) (*UploadedFile, error) {
	header, err := c.FormFile(field)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, ErrFileTooLarge
		}
		return nil, fmt.Errorf("missing %s file: %w", field, err)
	}

	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", field, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", field, err)
	}

	return &UploadedFile{Filename: header.Filename, Data: data}, nil
}

// respondUploadError sends 413 for oversized uploads and 400 otherwise
func respondUploadError(c *gin.Context, err error) {
	if errors.Is(err, ErrFileTooLarge) {
		respondError(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
		return
	}
	HandleInvalidRequest(c, err.Error())
}

// ExtractUUIDParam extracts and parses a UUID parameter from the URL path.
// Returns the parsed UUID or an error if the parameter is invalid.
func ExtractUUIDParam(c *gin.Context, param string) (uuid.UUID, error) {
	idStr := c.Param(param)
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %w", param, err)
	}
	return id, nil
}
