package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ressKim-io/question-prism/internal/usecase"
)

// BatchHandler handles spreadsheet batch HTTP requests
type BatchHandler struct {
	batchUC usecase.BatchUsecase
}

// NewBatchHandler creates a new batch handler
func NewBatchHandler(batchUC usecase.BatchUsecase) *BatchHandler {
	return &BatchHandler{batchUC: batchUC}
}

// Create handles POST /api/v1/batches
func (h *BatchHandler) Create(c *gin.Context) {
	upload, err := ReadUploadedFile(c, "file")
	if err != nil {
		respondUploadError(c, err)
		return
	}

	output, err := h.batchUC.Start(c.Request.Context(), upload.Filename, upload.Data)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	c.Header("Location", "/api/v1/batches/"+output.BatchID.String())
	respondSuccess(c, http.StatusAccepted, output)
}

// Get handles GET /api/v1/batches/:id
func (h *BatchHandler) Get(c *gin.Context) {
	id, err := ExtractUUIDParam(c, "id")
	if err != nil {
		HandleInvalidUUID(c, "batch id")
		return
	}

	output, err := h.batchUC.Get(c.Request.Context(), id)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}

// Export handles GET /api/v1/batches/:id/export?format=csv|xlsx
func (h *BatchHandler) Export(c *gin.Context) {
	id, err := ExtractUUIDParam(c, "id")
	if err != nil {
		HandleInvalidUUID(c, "batch id")
		return
	}

	output, err := h.batchUC.Export(c.Request.Context(), id, c.DefaultQuery("format", usecase.FormatCSV))
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondFile(c, output.Filename, output.ContentType, output.Data)
}
