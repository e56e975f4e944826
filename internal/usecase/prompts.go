package usecase

import (
	"fmt"
	"strings"

	"github.com/ressKim-io/question-prism/internal/domain/entity"
	"github.com/ressKim-io/question-prism/internal/domain/service"
)

const synthesisSystemPrompt = `You are a research coordinator. You receive a user question, the category
assigned to it by a classifier and the findings of two independent web searches.
Combine them into one accurate, well organized answer. Prefer facts that both
searches agree on, say so when the findings are thin or contradictory, and never
invent sources.`

const synthesisInstructions = `Write the final response using exactly this structure:

- Question Category: <the category above>
- Comprehensive Answer: <a complete answer to the question, suited to its category>
- Key Insights: <three to five short bullet points>
- Sources: <the URLs you relied on, one per line>`

// synthesisMessages builds the conversation for the synthesis call
func synthesisMessages(question string, classification *entity.Classification, reports []*entity.SearchReport) []service.Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n\n", question)
	fmt.Fprintf(&b, "Category: %s\n\n", classification.Label())
	for _, r := range reports {
		fmt.Fprintf(&b, "%s search results:\n%s\n\n", r.Provider, r.Summary)
	}
	b.WriteString(synthesisInstructions)

	return []service.Message{
		{Role: "system", Content: synthesisSystemPrompt},
		{Role: "user", Content: b.String()},
	}
}

// degradedAnswer assembles a response locally when synthesis is unavailable
func degradedAnswer(classification *entity.Classification, reports []*entity.SearchReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "- Question Category: %s\n", classification.Label())
	b.WriteString("- Comprehensive Answer: A synthesized answer could not be generated. The raw search findings are listed below.\n")
	b.WriteString("- Key Insights:\n")
	for _, r := range reports {
		fmt.Fprintf(&b, "  %s: %s\n", r.Provider, indent(r.Summary, "    "))
	}

	b.WriteString("- Sources:\n")
	sources := 0
	for _, r := range reports {
		for _, res := range r.Results {
			if res.URL == "" {
				continue
			}
			fmt.Fprintf(&b, "  %s\n", res.URL)
			sources++
		}
	}
	if sources == 0 {
		b.WriteString("  None available\n")
	}
	return b.String()
}

func indent(text, prefix string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	return strings.Join(lines, "\n"+prefix)
}
