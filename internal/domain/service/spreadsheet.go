package service

import (
	"errors"

	"github.com/ressKim-io/question-prism/internal/domain/entity"
)

// ErrUnsupportedFormat is returned for file types a reader or writer cannot handle
var ErrUnsupportedFormat = errors.New("unsupported format")

// SpreadsheetReader extracts questions from a tabular file
type SpreadsheetReader interface {
	// ReadQuestions returns the non-empty cells of the question column
	ReadQuestions(filename string, data []byte) ([]string, error)
}

// SpreadsheetWriter renders batch rows as a downloadable file
type SpreadsheetWriter interface {
	WriteRows(format string, rows []entity.BatchRow) ([]byte, error)
}
