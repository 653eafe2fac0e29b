// Package openai implements the improvement provider against the OpenAI
// Chat Completions API over plain HTTP.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"resume-tailor/internal/llm"
	"resume-tailor/internal/shared/telemetry"
)

const defaultAPIURL = "https://api.openai.com/v1/chat/completions"

// Client implements llm.Client using OpenAI Chat Completions.
type Client struct {
	apiKey     string
	model      string
	apiURL     string
	httpClient *http.Client
}

// NewClient constructs a new OpenAI client.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required for OpenAI")
	}
	timeout := 120 * time.Second
	if raw := strings.TrimSpace(os.Getenv("LLM_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	return &Client{
		apiKey: apiKey,
		model:  model,
		apiURL: defaultAPIURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	Temperature    *float32       `json:"temperature,omitempty"`
	ResponseFormat responseFormat `json:"response_format"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage *struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage,omitempty"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Improve performs one improvement exchange. Transport failures, timeouts and
// provider errors surface as llm.ErrRequestFailed; a response that is not the
// required two-field object surfaces as llm.ErrMalformedResponse. The call is
// never retried here.
func (c *Client) Improve(ctx context.Context, input llm.ImproveInput) (llm.ImprovementResult, error) {
	temp := float32(0.7)
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: llm.SystemPrompt},
			{Role: "user", Content: llm.BuildUserPrompt(input)},
		},
		Temperature: &temp,
		ResponseFormat: responseFormat{
			Type: "json_object",
		},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return llm.ImprovementResult{}, fmt.Errorf("%w: marshal request: %v", llm.ErrRequestFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return llm.ImprovementResult{}, fmt.Errorf("%w: %v", llm.ErrRequestFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return llm.ImprovementResult{}, fmt.Errorf("%w: %v", llm.ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return llm.ImprovementResult{}, fmt.Errorf("%w: read response: %v", llm.ErrRequestFailed, err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return llm.ImprovementResult{}, fmt.Errorf("%w: response parse: %v", llm.ErrRequestFailed, err)
	}
	if parsed.Error != nil {
		return llm.ImprovementResult{}, fmt.Errorf("%w: %s (%s)", llm.ErrRequestFailed, parsed.Error.Message, parsed.Error.Type)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return llm.ImprovementResult{}, fmt.Errorf("%w: status %d", llm.ErrRequestFailed, resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return llm.ImprovementResult{}, fmt.Errorf("%w: response missing choices", llm.ErrRequestFailed)
	}
	logUsage(c.model, &parsed)

	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	return llm.ParseResult(content)
}

func logUsage(model string, resp *chatResponse) {
	fields := map[string]any{"model": model}
	if resp.Usage != nil {
		fields["prompt_tokens"] = resp.Usage.PromptTokens
		fields["completion_tokens"] = resp.Usage.CompletionTokens
		fields["total_tokens"] = resp.Usage.TotalTokens
	}
	telemetry.Info("llm.response", fields)
}

var _ llm.Client = (*Client)(nil)
