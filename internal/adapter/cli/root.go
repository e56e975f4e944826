// Package cli implements the qprism command line interface.
package cli

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/ressKim-io/question-prism/internal/domain/entity"
	"github.com/ressKim-io/question-prism/internal/usecase"
)

// Services are the dependencies used by the commands
type Services struct {
	Questions usecase.QuestionUsecase
	Batches   usecase.BatchUsecase
	ChunkSize int
	Delay     time.Duration
	Serve     func() error
}

var services *Services

var errNotConfigured = errors.New("services not configured")

var rootCmd = &cobra.Command{
	Use:   "qprism",
	Short: "Classify and answer academic questions",
	Long: `qprism classifies questions into one of eight categories, searches the
web for context and synthesizes a structured answer. Spreadsheets of
questions can be classified in bulk.`,
	SilenceUsage: true,
}

// SetServices installs the dependencies used by the commands
func SetServices(s *Services) {
	services = s
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// reveal writes text progressively, one chunk at a time
func reveal(ctx context.Context, w io.Writer, text string) error {
	for i, chunk := range entity.Chunks(text, services.ChunkSize) {
		if i > 0 && services.Delay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(services.Delay):
			}
		}
		if _, err := io.WriteString(w, chunk); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}
