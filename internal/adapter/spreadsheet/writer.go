package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ressKim-io/question-prism/internal/domain/entity"
	"github.com/ressKim-io/question-prism/internal/domain/service"
)

const sheetName = "Classifications"

var header = []string{"Question", "Category"}

// Writer renders batch rows as CSV or XLSX
type Writer struct{}

var _ service.SpreadsheetWriter = (*Writer)(nil)

// NewWriter creates a new Writer
func NewWriter() *Writer {
	return &Writer{}
}

// WriteRows renders rows in the given format, "csv" or "xlsx"
func (w *Writer) WriteRows(format string, rows []entity.BatchRow) ([]byte, error) {
	switch format {
	case "csv":
		return writeCSV(rows)
	case "xlsx":
		return writeWorkbook(rows)
	default:
		return nil, fmt.Errorf("%w: %q", service.ErrUnsupportedFormat, format)
	}
}

func writeCSV(rows []entity.BatchRow) ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.Question, r.Category}); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

func writeWorkbook(rows []entity.BatchRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, cell, &[]string{r.Question, r.Category}); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}
