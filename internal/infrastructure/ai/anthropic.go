package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/knock-sh/knock/internal/domain"
	"github.com/knock-sh/knock/internal/ports"
)

const anthropicEndpoint = "https://api.anthropic.com/v1/messages"

type anthropicProvider struct {
	settings   domain.AnthropicSettings
	httpClient *http.Client
	endpoint   string // overridden in tests only
}

func newAnthropicProvider(settings domain.AnthropicSettings, client *http.Client) ports.Provider {
	return &anthropicProvider{
		settings:   settings,
		httpClient: client,
	}
}

func (p *anthropicProvider) Name() string {
	return domain.ProviderAnthropic
}

// Send posts to the Messages API. The credential check happens before any
// network I/O.
func (p *anthropicProvider) Send(ctx context.Context, req ports.ProviderRequest) (string, error) {
	keyEnv := valueOrDefault(p.settings.APIKeyEnv, "ANTHROPIC_API_KEY")
	apiKey := os.Getenv(keyEnv)
	if apiKey == "" {
		return "", &domain.CredentialError{EnvVar: keyEnv}
	}

	payload := anthropicRequest{
		Model:     valueOrDefault(p.settings.Model, "claude-sonnet-4-20250514"),
		MaxTokens: req.MaxTokens,
		System:    req.Instructions,
		Messages: []anthropicMessage{
			{Role: "user", Content: req.Prompt},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, valueOrDefault(p.endpoint, anthropicEndpoint), bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("x-api-key", apiKey)
	httpReq.Header.Set("anthropic-version", "2023-06-01")
	httpReq.Header.Set("content-type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("anthropic: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("anthropic: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &domain.HTTPError{Provider: "anthropic", StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var decoded anthropicResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("anthropic: decode response: %w", err)
	}
	if len(decoded.Content) == 0 {
		return "", domain.ErrEmptyResponse
	}
	return decoded.Content[0].Text, nil
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}
