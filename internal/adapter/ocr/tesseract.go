package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/ressKim-io/question-prism/internal/domain/service"
)

// TesseractRecognizer extracts text with the Tesseract engine
type TesseractRecognizer struct {
	languages []string
}

var _ service.TextRecognizer = (*TesseractRecognizer)(nil)

// NewTesseractRecognizer creates a recognizer for the given language codes
func NewTesseractRecognizer(languages []string) *TesseractRecognizer {
	return &TesseractRecognizer{languages: languages}
}

// Recognize runs OCR on an encoded image. A gosseract client is not safe for
// concurrent use, so each call gets its own. Once started the engine is not
// interrupted by ctx.
func (r *TesseractRecognizer) Recognize(ctx context.Context, image []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if len(r.languages) > 0 {
		if err := client.SetLanguage(r.languages...); err != nil {
			return "", fmt.Errorf("failed to set ocr languages: %w", err)
		}
	}
	if err := client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("failed to load image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}

	return JoinWords(text), nil
}

// JoinWords collapses every run of whitespace to a single space
func JoinWords(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
