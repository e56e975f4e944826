package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var scanJSON bool

var scanCmd = &cobra.Command{
	Use:   "scan [image]",
	Short: "Answer a question read from an image",
	Long: `Extracts text from a JPEG or PNG image with OCR and answers it as a
question.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "output the result as JSON")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	if services == nil {
		return errNotConfigured
	}

	image, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}

	output, err := services.Questions.Scan(cmd.Context(), image)
	if err != nil {
		return err
	}
	if scanJSON {
		return printJSON(cmd, output)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Extracted text: %s\n", output.ExtractedText)
	return printAnswer(cmd, output.Answer)
}
