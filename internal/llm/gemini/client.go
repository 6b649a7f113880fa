package gemini

import (
	"context"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"

	"studybot-backend/internal/llm"
)

// Client implements llm.Client using the Gemini API.
type Client struct {
	model  string
	client *genai.Client
}

// NewClient constructs a new Gemini client.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required for Gemini")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &Client{model: model, client: client}, nil
}

// GenerateText sends one prompt and returns the model's text response.
func (c *Client) GenerateText(ctx context.Context, input llm.GenerateInput) (string, error) {
	cfg := &genai.GenerateContentConfig{}
	if input.Temperature > 0 {
		cfg.Temperature = genai.Ptr(input.Temperature)
	}
	if input.MaxOutputTokens > 0 {
		cfg.MaxOutputTokens = input.MaxOutputTokens
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(input.Prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	logUsage(c.model, resp.UsageMetadata)

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("gemini response: %w", llm.ErrEmptyCompletion)
	}
	return text, nil
}

func logUsage(model string, usage *genai.GenerateContentResponseUsageMetadata) {
	if usage == nil {
		log.Printf("llm response model=%s", model)
		return
	}
	log.Printf("llm response model=%s prompt_tokens=%d completion_tokens=%d total_tokens=%d",
		model, usage.PromptTokenCount, usage.CandidatesTokenCount, usage.TotalTokenCount)
}

var _ llm.Client = (*Client)(nil)
