package entity

import "strings"

// Category is one of the eight fixed question categories
type Category string

const (
	CategoryMathematical    Category = "Mathematical"
	CategoryDefinition      Category = "Definition"
	CategoryFormulation     Category = "Formulation"
	CategoryInferential     Category = "Inferential"
	CategoryDifferentiation Category = "Differentiation"
	CategoryAnalytical      Category = "Analytical"
	CategoryStatistical     Category = "Statistical"
	CategoryInference       Category = "Inference"
)

// CategoryInfo pairs a category with its one-line definition
type CategoryInfo struct {
	Name        Category `json:"name"`
	Description string   `json:"description"`
}

// Categories lists every category in canonical order
var Categories = []CategoryInfo{
	{Name: CategoryMathematical, Description: "Calculations, equations, derivatives, integrals, numeric tasks"},
	{Name: CategoryDefinition, Description: "Definitions, theory, explanations, conceptual meaning"},
	{Name: CategoryFormulation, Description: "Deriving or expressing formulas, using principles"},
	{Name: CategoryInferential, Description: "Inference, interpretation, logical deduction"},
	{Name: CategoryDifferentiation, Description: "Compare or classify two or more items"},
	{Name: CategoryAnalytical, Description: "Sequences, logic puzzles, arithmetic, patterns"},
	{Name: CategoryStatistical, Description: "Averages, charts, probability, standard deviation"},
	{Name: CategoryInference, Description: "Drawing conclusions from given information, completing logical statements"},
}

// CategoryNames returns the category labels in canonical order
func CategoryNames() []string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c.Name)
	}
	return names
}

// ParseCategory matches s against the known labels, ignoring case,
// surrounding whitespace, markdown emphasis and trailing punctuation.
func ParseCategory(s string) (Category, bool) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.Trim(cleaned, "*_`\"' ")
	cleaned = strings.TrimRight(cleaned, ".!:; ")
	cleaned = strings.Trim(cleaned, "*_`\"' ")

	for _, c := range Categories {
		if strings.EqualFold(cleaned, string(c.Name)) {
			return c.Name, true
		}
	}
	return "", false
}

// IsValid returns true if c is one of the known categories
func (c Category) IsValid() bool {
	for _, info := range Categories {
		if info.Name == c {
			return true
		}
	}
	return false
}
