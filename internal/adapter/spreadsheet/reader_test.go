package spreadsheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ressKim-io/question-prism/internal/domain/service"
)

func buildWorkbook(t *testing.T, rows [][]string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestReader_ReadQuestions(t *testing.T) {
	reader := NewReader()

	t.Run("xlsx with question column", func(t *testing.T) {
		data := buildWorkbook(t, [][]string{
			{"id", " Question ", "notes"},
			{"1", "Define entropy.", "x"},
			{"2", "", "blank question"},
			{"3", "  What is 2 + 2?  "},
		})

		questions, err := reader.ReadQuestions("Quiz.XLSX", data)

		require.NoError(t, err)
		assert.Equal(t, []string{"Define entropy.", "What is 2 + 2?"}, questions)
	})

	t.Run("xlsx falls back to first column", func(t *testing.T) {
		data := buildWorkbook(t, [][]string{
			{"prompt", "answer"},
			{"Compare DNA and RNA", "-"},
			{"Explain osmosis", "-"},
		})

		questions, err := reader.ReadQuestions("quiz.xlsx", data)

		require.NoError(t, err)
		assert.Equal(t, []string{"Compare DNA and RNA", "Explain osmosis"}, questions)
	})

	t.Run("csv with bom and ragged rows", func(t *testing.T) {
		data := []byte("\xef\xbb\xbfnumber,question\n1,Define gravity\n2\n3,\"Solve x, y\"\n")

		questions, err := reader.ReadQuestions("quiz.csv", data)

		require.NoError(t, err)
		assert.Equal(t, []string{"Define gravity", "Solve x, y"}, questions)
	})

	t.Run("header only", func(t *testing.T) {
		questions, err := reader.ReadQuestions("quiz.csv", []byte("question\n"))

		require.NoError(t, err)
		assert.Empty(t, questions)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := reader.ReadQuestions("quiz.pdf", []byte("%PDF"))

		assert.ErrorIs(t, err, service.ErrUnsupportedFormat)
	})

	t.Run("corrupt workbook", func(t *testing.T) {
		_, err := reader.ReadQuestions("quiz.xlsx", []byte("not a zip"))

		assert.Error(t, err)
		assert.NotErrorIs(t, err, service.ErrUnsupportedFormat)
	})
}
