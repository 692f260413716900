package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	anthropicURL        = "https://api.anthropic.com/v1/messages"
	anthropicVersion    = "2023-06-01"
	anthropicModel      = "claude-haiku-4-5-20250514"
	anthropicAPIKeyHdr  = "x-api-key"
	anthropicVersionHdr = "anthropic-version"
)

// AnthropicProvider calls the Anthropic messages API. It is the secondary
// provider, tried when the primary fails.
type AnthropicProvider struct {
	apiKey  string
	baseURL string
	client  HTTPClient
}

// NewAnthropicProvider builds the provider. The API key must be non-empty.
func NewAnthropicProvider(apiKey string) *AnthropicProvider {
	return &AnthropicProvider{
		apiKey:  apiKey,
		baseURL: anthropicURL,
		client:  &http.Client{Timeout: defaultTimeout},
	}
}

func (p *AnthropicProvider) Name() string { return "anthropic" }

type anthropicRequest struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens"`
	Messages  []chatMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

func (p *AnthropicProvider) Complete(ctx context.Context, system, prompt string) (string, error) {
	// the messages API takes the user prompt only; the structural contract
	// is already embedded in the prompt itself
	body, err := json.Marshal(anthropicRequest{
		Model:     anthropicModel,
		MaxTokens: maxTokens,
		Messages:  []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal anthropic request: %v", err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build anthropic request: %v", err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(anthropicAPIKeyHdr, p.apiKey)
	req.Header.Set(anthropicVersionHdr, anthropicVersion)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("anthropic request failed: %v", err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("anthropic returned status %v: %v", resp.StatusCode, string(b))
	}

	var parsed anthropicResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode anthropic response: %v", err.Error())
	}
	if len(parsed.Content) == 0 || parsed.Content[0].Text == "" {
		return "", fmt.Errorf("anthropic returned an empty completion")
	}
	return parsed.Content[0].Text, nil
}
