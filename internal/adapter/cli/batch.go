package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ressKim-io/question-prism/internal/usecase"
)

var batchOutput string

var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Classify every question in a spreadsheet",
	Long: `Reads questions from an Excel (.xlsx) or CSV file and classifies them
one by one. Results are written as CSV or Excel depending on the
extension of the output file.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", usecase.ExportBaseName+".csv", "output file (.csv or .xlsx)")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	if services == nil {
		return errNotConfigured
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(batchOutput)), ".")
	if format != usecase.FormatCSV && format != usecase.FormatXLSX {
		return fmt.Errorf("unsupported output format %q", filepath.Ext(batchOutput))
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	output, err := services.Batches.Process(cmd.Context(), filepath.Base(args[0]), data, func(done, total int) {
		cmd.PrintErrf("\rClassified %d/%d", done, total)
	})
	if err != nil {
		return err
	}
	cmd.PrintErrln()

	export, err := services.Batches.Render(format, output.Rows)
	if err != nil {
		return err
	}
	if err := os.WriteFile(batchOutput, export.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}

	failed := 0
	for _, row := range output.Rows {
		if row.Failed() {
			failed++
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows to %s", len(output.Rows), batchOutput)
	if failed > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), " (%d failed)", failed)
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}
