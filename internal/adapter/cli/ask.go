package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ressKim-io/question-prism/internal/usecase"
)

var (
	askJSON         bool
	askClassifyOnly bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Classify and answer a question",
	Long: `Classifies the question, searches the web for context and prints a
synthesized answer. Words after the command are joined into one question.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the answer as JSON")
	askCmd.Flags().BoolVarP(&askClassifyOnly, "classify", "c", false, "only classify the question")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if services == nil {
		return errNotConfigured
	}

	ctx := cmd.Context()
	input := &usecase.QuestionInput{Question: strings.Join(args, " ")}

	if askClassifyOnly {
		output, err := services.Questions.Classify(ctx, input)
		if err != nil {
			return err
		}
		if askJSON {
			return printJSON(cmd, output)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Category: %s\n", output.Category)
		return nil
	}

	output, err := services.Questions.Ask(ctx, input)
	if err != nil {
		return err
	}
	if askJSON {
		return printJSON(cmd, output)
	}
	return printAnswer(cmd, output)
}

func printAnswer(cmd *cobra.Command, output *usecase.AnswerOutput) error {
	fmt.Fprintf(cmd.OutOrStdout(), "Category: %s\n\n", output.Classification.Category)
	if err := reveal(cmd.Context(), cmd.OutOrStdout(), output.Answer); err != nil {
		return err
	}
	if output.Degraded {
		cmd.PrintErrln("\nnote: the answer could not be synthesized; search results are shown instead")
	}
	return nil
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
