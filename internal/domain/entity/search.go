package entity

import (
	"fmt"
	"strings"
)

// NoResultsMessage is the marker used when a provider returns nothing
const NoResultsMessage = "No results found for the given query."

// SearchResult is a single web search hit
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// SearchReport holds one provider's results for a query and the text
// summary handed to synthesis.
type SearchReport struct {
	Provider string         `json:"provider"`
	Query    string         `json:"query"`
	Results  []SearchResult `json:"results"`
	Summary  string         `json:"summary"`
	Error    string         `json:"error,omitempty"`
}

// NewSearchReport builds a report from provider results
func NewSearchReport(provider, query string, results []SearchResult) *SearchReport {
	if results == nil {
		results = []SearchResult{}
	}
	return &SearchReport{
		Provider: provider,
		Query:    query,
		Results:  results,
		Summary:  FormatSearchResults(results),
	}
}

// NewFailedSearchReport builds a report whose summary is the descriptive
// error message.
func NewFailedSearchReport(provider, query, message string) *SearchReport {
	return &SearchReport{
		Provider: provider,
		Query:    query,
		Results:  []SearchResult{},
		Summary:  message,
		Error:    message,
	}
}

// Failed returns true if the provider call did not succeed
func (r *SearchReport) Failed() bool {
	return r.Error != ""
}

// FormatSearchResults renders results as a numbered list
func FormatSearchResults(results []SearchResult) string {
	if len(results) == 0 {
		return NoResultsMessage
	}

	lines := make([]string, 0, len(results))
	for i, r := range results {
		title := orDefault(r.Title, "No title")
		url := orDefault(r.URL, "No URL")
		snippet := orDefault(r.Snippet, "No content available")
		lines = append(lines, fmt.Sprintf("%d. **%s**\n   URL: %s\n   Content: %s\n", i+1, title, url, snippet))
	}
	return strings.Join(lines, "\n")
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return strings.TrimSpace(s)
}
