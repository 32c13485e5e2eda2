package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	DefaultOpenAIEndpoint = "https://api.openai.com/v1/chat/completions"
	DefaultOpenAIModel    = "gpt-4o-mini"
)

// OpenAIProvider implements Generator on top of the chat completions endpoint.
type OpenAIProvider struct {
	apiKey   string
	model    string
	endpoint string
	http     *http.Client
}

// NewOpenAIProvider returns a provider posting to endpoint with the given model.
// Empty model or endpoint fall back to the defaults.
func NewOpenAIProvider(apiKey, model, endpoint string, httpClient *http.Client) (*OpenAIProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("openai: missing api key")
	}
	if model == "" {
		model = DefaultOpenAIModel
	}
	if endpoint == "" {
		endpoint = DefaultOpenAIEndpoint
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &OpenAIProvider{apiKey: apiKey, model: model, endpoint: endpoint, http: httpClient}, nil
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	Refusal string `json:"refusal,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Generate sends prompt as a single user message and returns the reply text.
func (p *OpenAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody, err := json.Marshal(chatRequest{
		Model:          p.model,
		Messages:       []chatMessage{{Role: "user", Content: prompt}},
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		return "", fmt.Errorf("openai: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("openai: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai: do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("openai: read response: %w", err)
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", fmt.Errorf("openai: unmarshal response (status %d): %w", resp.StatusCode, err)
	}
	if cr.Error != nil {
		return "", fmt.Errorf("openai: api error (status %d): %s", resp.StatusCode, cr.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai: unexpected status %d", resp.StatusCode)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("openai: %w: empty choices array", ErrEmptyReply)
	}

	choice := cr.Choices[0]
	if choice.Message.Refusal != "" {
		return "", fmt.Errorf("openai: %w: %s", ErrBlocked, choice.Message.Refusal)
	}
	if choice.FinishReason == "content_filter" {
		return "", fmt.Errorf("openai: %w: content filter", ErrBlocked)
	}
	if strings.TrimSpace(choice.Message.Content) == "" {
		return "", fmt.Errorf("openai: %w", ErrEmptyReply)
	}
	return choice.Message.Content, nil
}
