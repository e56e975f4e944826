package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ressKim-io/question-prism/internal/domain/entity"
	"github.com/ressKim-io/question-prism/internal/domain/service"
)

// TavilyMissingKeyMessage is reported instead of results when no key is set
const TavilyMissingKeyMessage = "Tavily API key not found. Please set TAVILY_API_KEY environment variable."

// TavilySearchRequest represents a request to the Tavily search API
type TavilySearchRequest struct {
	APIKey     string `json:"api_key"`
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

// TavilyResult represents a single Tavily hit
type TavilyResult struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// TavilySearchResponse represents the response from the Tavily search API
type TavilySearchResponse struct {
	Query   string         `json:"query"`
	Results []TavilyResult `json:"results"`
}

// TavilyClient is an HTTP client for the Tavily search API
type TavilyClient struct {
	baseURL    string
	apiKey     string
	maxResults int
	httpClient *http.Client
}

var _ service.Searcher = (*TavilyClient)(nil)

// NewTavilyClient creates a new Tavily client
func NewTavilyClient(baseURL, apiKey string, maxResults int, timeout time.Duration) *TavilyClient {
	return &TavilyClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		maxResults: maxResults,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Name returns the provider name
func (c *TavilyClient) Name() string {
	return "Tavily"
}

// Search runs a query against Tavily
func (c *TavilyClient) Search(ctx context.Context, query string) ([]entity.SearchResult, error) {
	if c.apiKey == "" {
		return nil, &service.NotConfiguredError{Message: TavilyMissingKeyMessage}
	}

	body, err := json.Marshal(TavilySearchRequest{
		APIKey:     c.apiKey,
		Query:      query,
		MaxResults: c.maxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("tavily returned status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("tavily returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var result TavilySearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	results := make([]entity.SearchResult, 0, len(result.Results))
	for _, r := range result.Results {
		if len(results) == c.maxResults {
			break
		}
		results = append(results, entity.SearchResult{
			Title:   r.Title,
			URL:     r.URL,
			Snippet: r.Content,
		})
	}
	return results, nil
}
