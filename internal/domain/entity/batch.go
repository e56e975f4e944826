package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// BatchStatus represents the current state of a batch
type BatchStatus string

const (
	BatchStatusPending   BatchStatus = "pending"
	BatchStatusRunning   BatchStatus = "running"
	BatchStatusCompleted BatchStatus = "completed"
	BatchStatusFailed    BatchStatus = "failed"
)

// BatchRow pairs a question with its category or an error string
type BatchRow struct {
	Question string `json:"question"`
	Category string `json:"category"`
}

// Failed reports whether the row holds a classification error
func (r BatchRow) Failed() bool {
	return strings.HasPrefix(r.Category, ClassificationErrorPrefix)
}

// Batch tracks the classification of every question in one spreadsheet
type Batch struct {
	ID        uuid.UUID   `json:"id"`
	Filename  string      `json:"filename"`
	Status    BatchStatus `json:"status"`
	Questions []string    `json:"questions"`
	Rows      []BatchRow  `json:"rows"`
	Completed int         `json:"completed"`
	Error     string      `json:"error,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// NewBatch creates a pending batch for the given questions
func NewBatch(filename string, questions []string) *Batch {
	now := time.Now().UTC()
	return &Batch{
		ID:        uuid.New(),
		Filename:  filename,
		Status:    BatchStatusPending,
		Questions: questions,
		Rows:      make([]BatchRow, 0, len(questions)),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Total returns the number of questions in the batch
func (b *Batch) Total() int {
	return len(b.Questions)
}

// Record appends a finished row and advances the completion count
func (b *Batch) Record(row BatchRow) {
	b.Rows = append(b.Rows, row)
	b.Completed = len(b.Rows)
	b.UpdatedAt = time.Now().UTC()
}

// Progress returns the completed fraction between 0 and 1
func (b *Batch) Progress() float64 {
	if b.Total() == 0 {
		return 0
	}
	return float64(b.Completed) / float64(b.Total())
}

// IsFinished returns true if the batch will not change anymore
func (b *Batch) IsFinished() bool {
	return b.Status == BatchStatusCompleted || b.Status == BatchStatusFailed
}
