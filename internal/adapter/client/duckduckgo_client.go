package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/ressKim-io/question-prism/internal/domain/entity"
	"github.com/ressKim-io/question-prism/internal/domain/service"
)

const duckDuckGoUserAgent = "Mozilla/5.0 (compatible; question-prism/1.0)"

var (
	ddgResultSel  = cascadia.MustCompile("div.result:not(.result--ad)")
	ddgTitleSel   = cascadia.MustCompile("a.result__a")
	ddgSnippetSel = cascadia.MustCompile(".result__snippet")
)

// DuckDuckGoClient scrapes the DuckDuckGo HTML endpoint. It needs no key.
type DuckDuckGoClient struct {
	baseURL    string
	maxResults int
	httpClient *http.Client
}

var _ service.Searcher = (*DuckDuckGoClient)(nil)

// NewDuckDuckGoClient creates a new DuckDuckGo client
func NewDuckDuckGoClient(baseURL string, maxResults int, timeout time.Duration) *DuckDuckGoClient {
	return &DuckDuckGoClient{
		baseURL:    baseURL,
		maxResults: maxResults,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Name returns the provider name
func (c *DuckDuckGoClient) Name() string {
	return "DuckDuckGo"
}

// Search runs a query against DuckDuckGo
func (c *DuckDuckGoClient) Search(ctx context.Context, query string) ([]entity.SearchResult, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	params := endpoint.Query()
	params.Set("q", query)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", duckDuckGoUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("duckduckgo returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return parseDuckDuckGoResults(body, c.maxResults)
}

func parseDuckDuckGoResults(body []byte, limit int) ([]entity.SearchResult, error) {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	results := make([]entity.SearchResult, 0, limit)
	for _, node := range ddgResultSel.MatchAll(doc) {
		if len(results) == limit {
			break
		}

		link := ddgTitleSel.MatchFirst(node)
		if link == nil {
			continue
		}

		result := entity.SearchResult{
			Title: textContent(link),
			URL:   resolveDuckDuckGoURL(attr(link, "href")),
		}
		if snippet := ddgSnippetSel.MatchFirst(node); snippet != nil {
			result.Snippet = textContent(snippet)
		}
		results = append(results, result)
	}
	return results, nil
}

// resolveDuckDuckGoURL unwraps the redirect links the HTML endpoint emits
func resolveDuckDuckGoURL(href string) string {
	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" && strings.HasSuffix(u.Path, "/l/") {
		return target
	}
	return href
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
