package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// AnswerMarker introduces the comprehensive answer section of a synthesis
const AnswerMarker = "Comprehensive Answer:"

// Answer is the synthesized response to a single question
type Answer struct {
	ID             uuid.UUID       `json:"id"`
	Question       string          `json:"question"`
	Classification *Classification `json:"classification"`
	Searches       []*SearchReport `json:"searches"`
	Text           string          `json:"text"`
	Display        string          `json:"display"`
	Degraded       bool            `json:"degraded"`
	CreatedAt      time.Time       `json:"created_at"`
}

// NewAnswer creates an Answer for the given synthesis text
func NewAnswer(question string, classification *Classification, searches []*SearchReport, text string) *Answer {
	return &Answer{
		ID:             uuid.New(),
		Question:       question,
		Classification: classification,
		Searches:       searches,
		Text:           text,
		Display:        PresentAnswer(text),
		CreatedAt:      time.Now().UTC(),
	}
}

// PresentAnswer trims everything before the comprehensive answer marker.
// Text without the marker is returned unchanged.
func PresentAnswer(text string) string {
	idx := strings.Index(text, AnswerMarker)
	if idx < 0 {
		return text
	}
	return text[idx:]
}

// Chunks splits text into pieces of at most size runes
func Chunks(text string, size int) []string {
	if size <= 0 {
		size = 20
	}
	if text == "" {
		return nil
	}

	chunks := make([]string, 0, utf8.RuneCountInString(text)/size+1)
	start, count := 0, 0
	for i := range text {
		if count == size {
			chunks = append(chunks, text[start:i])
			start, count = i, 0
		}
		count++
	}
	return append(chunks, text[start:])
}
