package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ressKim-io/question-prism/internal/domain/service"
)

// QuestionColumn is the preferred header of the question column
const QuestionColumn = "question"

// Reader extracts questions from .xlsx and .csv uploads
type Reader struct{}

var _ service.SpreadsheetReader = (*Reader)(nil)

// NewReader creates a new Reader
func NewReader() *Reader {
	return &Reader{}
}

// ReadQuestions reads the first sheet. The first row is a header; the column
// named "question" is used when present, otherwise the first column.
func (r *Reader) ReadQuestions(filename string, data []byte) ([]string, error) {
	var (
		rows [][]string
		err  error
	)

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".xlsx", ".xlsm":
		rows, err = readWorkbook(data)
	case ".csv":
		rows, err = readCSV(data)
	default:
		return nil, fmt.Errorf("%w: %q", service.ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}

	return questionColumn(rows), nil
}

func readWorkbook(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

func readCSV(data []byte) ([][]string, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	return rows, nil
}

func questionColumn(rows [][]string) []string {
	if len(rows) == 0 {
		return nil
	}

	col := 0
	for i, h := range rows[0] {
		if strings.EqualFold(strings.TrimSpace(h), QuestionColumn) {
			col = i
			break
		}
	}

	questions := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if col >= len(row) {
			continue
		}
		if q := strings.TrimSpace(row[col]); q != "" {
			questions = append(questions, q)
		}
	}
	return questions
}
