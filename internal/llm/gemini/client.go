// Package gemini implements the improvement provider against Google Gemini
// via github.com/google/generative-ai-go.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"resume-tailor/internal/llm"
)

const defaultModel = "gemini-3-pro-preview"

// Client implements llm.Client using the Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient constructs a new Gemini client. An empty model name selects the
// default model.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Client{client: client, model: model}, nil
}

// Improve performs one improvement exchange. The JSON response mime type is
// requested up front; the shared response schema check still applies since
// the model can ignore the hint.
func (c *Client) Improve(ctx context.Context, input llm.ImproveInput) (llm.ImprovementResult, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.7)
	model.ResponseMIMEType = "application/json"
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(llm.SystemPrompt)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(llm.BuildUserPrompt(input)))
	if err != nil {
		return llm.ImprovementResult{}, fmt.Errorf("%w: %v", llm.ErrRequestFailed, err)
	}

	text, err := textFromResponse(resp)
	if err != nil {
		return llm.ImprovementResult{}, err
	}
	return llm.ParseResult(text)
}

// Close releases the underlying API client.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func textFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates in response", llm.ErrMalformedResponse)
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no content in response", llm.ErrMalformedResponse)
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("%w: no text parts in response", llm.ErrMalformedResponse)
	}
	return strings.Join(parts, ""), nil
}

var _ llm.Client = (*Client)(nil)
