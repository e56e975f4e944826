package entity

import (
	"fmt"
	"strings"
)

// ClassificationErrorPrefix marks a category field that holds an error
// instead of a label.
const ClassificationErrorPrefix = "Classification Error: "

// UnrecognizedPrefix marks a model label outside the closed category set.
const UnrecognizedPrefix = "Unrecognized category: "

// NormalizeQuestion trims the question text. The second return value is
// false when nothing is left.
func NormalizeQuestion(text string) (string, bool) {
	q := strings.TrimSpace(text)
	return q, q != ""
}

// Classification is the outcome of classifying one question
type Classification struct {
	Question string   `json:"question"`
	Category Category `json:"category,omitempty"`
	Raw      string   `json:"raw"`
	Valid    bool     `json:"valid"`
	Override string   `json:"override,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// Label returns the text shown for this classification on the interactive
// path. Unknown model output is passed through with a visible marker.
func (c *Classification) Label() string {
	switch {
	case c.Valid:
		return string(c.Category)
	case c.Error != "":
		return ClassificationErrorPrefix + c.Error
	default:
		return UnrecognizedPrefix + strings.TrimSpace(c.Raw)
	}
}

// BatchLabel returns the value recorded in a batch row: a known label or an
// error string.
func (c *Classification) BatchLabel() string {
	if c.Valid {
		return string(c.Category)
	}
	if c.Error != "" {
		return ClassificationErrorPrefix + c.Error
	}
	return ClassificationErrorPrefix + fmt.Sprintf("unrecognized label %q", strings.TrimSpace(c.Raw))
}
