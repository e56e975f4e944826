package service

import "context"

// TextRecognizer extracts text from an image. An empty string with a nil
// error means no text was found.
type TextRecognizer interface {
	Recognize(ctx context.Context, image []byte) (string, error)
}
