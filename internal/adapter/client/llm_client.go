package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ressKim-io/question-prism/internal/domain/service"
)

// ErrMissingAPIKey is returned when the selected backend has no credential
var ErrMissingAPIKey = errors.New("llm api key not configured")

// ChatCompletionRequest represents an OpenAI compatible chat request
type ChatCompletionRequest struct {
	Model       string            `json:"model"`
	Messages    []service.Message `json:"messages"`
	Temperature float64           `json:"temperature"`
	MaxTokens   int               `json:"max_tokens,omitempty"`
}

// ChatCompletionResponse represents an OpenAI compatible chat response
type ChatCompletionResponse struct {
	Choices []struct {
		Message      service.Message `json:"message"`
		FinishReason string          `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// LLMClient is an HTTP client for OpenAI compatible chat completion APIs.
// OpenAI and Groq are both served by it.
type LLMClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

var _ service.TextGenerator = (*LLMClient)(nil)

// NewLLMClient creates a new chat completion client
func NewLLMClient(baseURL, apiKey, model string, timeout time.Duration) *LLMClient {
	return &LLMClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Generate sends the conversation and returns the first choice
func (c *LLMClient) Generate(ctx context.Context, messages []service.Message, opts service.GenerateOptions) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	reqBody := ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("llm service returned status %d: %s", resp.StatusCode, string(respBody))
		}
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if result.Error != nil {
		return "", fmt.Errorf("llm service returned status %d: %s", resp.StatusCode, result.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("llm service returned status %d: %s", resp.StatusCode, string(respBody))
	}
	if len(result.Choices) == 0 {
		return "", errors.New("llm service returned no choices")
	}

	return result.Choices[0].Message.Content, nil
}

// ModelName returns the configured model
func (c *LLMClient) ModelName() string {
	return c.model
}

// Ready checks that the backend accepts the configured credential
func (c *LLMClient) Ready(ctx context.Context) error {
	if c.apiKey == "" {
		return ErrMissingAPIKey
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/models", http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("llm service not ready: status %d", resp.StatusCode)
	}

	return nil
}
