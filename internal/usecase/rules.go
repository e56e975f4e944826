package usecase

import (
	"strings"
	"unicode"

	"github.com/ressKim-io/question-prism/internal/domain/entity"
)

// KeywordRule forces a category when a question matches
type KeywordRule struct {
	Name     string
	Category entity.Category
	Match    func(question string) bool
}

// DefaultRules are checked in order; the first match wins
var DefaultRules = []KeywordRule{
	{Name: "define", Category: entity.CategoryDefinition, Match: containsWord("define")},
	{Name: "theory", Category: entity.CategoryDefinition, Match: containsWord("theory")},
	{Name: "differentiate", Category: entity.CategoryDifferentiation, Match: containsWord("differentiate")},
	{Name: "numeric", Category: entity.CategoryMathematical, Match: hasNumericContent},
}

// MatchRule returns the first rule that applies to question
func MatchRule(rules []KeywordRule, question string) (KeywordRule, bool) {
	for _, r := range rules {
		if r.Match(question) {
			return r, true
		}
	}
	return KeywordRule{}, false
}

// ApplyOverrides replaces the model label of c when a keyword rule applies.
// A classification that failed or came back malformed is repaired the same
// way. It returns true if a rule was applied.
func ApplyOverrides(rules []KeywordRule, c *entity.Classification) bool {
	rule, ok := MatchRule(rules, c.Question)
	if !ok {
		return false
	}

	c.Category = rule.Category
	c.Valid = true
	c.Override = rule.Name
	c.Error = ""
	return true
}

// containsWord matches substrings case-insensitively, so "defined" and
// "Define" both count for "define".
func containsWord(word string) func(string) bool {
	return func(question string) bool {
		return strings.Contains(strings.ToLower(question), word)
	}
}

func hasNumericContent(question string) bool {
	return strings.ContainsFunc(question, func(r rune) bool {
		if unicode.IsDigit(r) {
			return true
		}
		switch r {
		case '=', '∫', '√', '∑', 'π':
			return true
		}
		return false
	})
}
