package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/knock-sh/knock/internal/domain"
	"github.com/knock-sh/knock/internal/ports"
)

const defaultOpenAIBaseURL = "https://api.openai.com"

type openAIProvider struct {
	settings   domain.OpenAISettings
	httpClient *http.Client
}

func newOpenAIProvider(settings domain.OpenAISettings, client *http.Client) ports.Provider {
	return &openAIProvider{
		settings:   settings,
		httpClient: client,
	}
}

func (p *openAIProvider) Name() string {
	return domain.ProviderOpenAI
}

func (p *openAIProvider) Send(ctx context.Context, req ports.ProviderRequest) (string, error) {
	keyEnv := valueOrDefault(p.settings.APIKeyEnv, "OPENAI_API_KEY")
	apiKey := os.Getenv(keyEnv)
	if apiKey == "" {
		return "", &domain.CredentialError{EnvVar: keyEnv}
	}

	payload := openAIRequest{
		Model:           valueOrDefault(p.settings.Model, "gpt-5.1"),
		Instructions:    req.Instructions,
		Input:           req.Prompt,
		Temperature:     req.Temperature,
		MaxOutputTokens: req.MaxTokens,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	endpoint := valueOrDefault(p.settings.BaseURL, defaultOpenAIBaseURL) + "/v1/responses"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("authorization", "Bearer "+apiKey)
	httpReq.Header.Set("content-type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("openai: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &domain.HTTPError{Provider: "openai", StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var decoded openAIResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("openai: decode response: %w", err)
	}
	text := decoded.OutputText()
	if text == "" {
		return "", domain.ErrEmptyResponse
	}
	return text, nil
}

type openAIRequest struct {
	Model           string  `json:"model"`
	Instructions    string  `json:"instructions"`
	Input           string  `json:"input"`
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"max_output_tokens"`
}

type openAIResponse struct {
	Output []struct {
		Type    string `json:"type"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"output"`
}

// OutputText aggregates the output_text parts of every message item.
func (r openAIResponse) OutputText() string {
	var b strings.Builder
	for _, item := range r.Output {
		for _, part := range item.Content {
			if part.Type == "output_text" {
				b.WriteString(part.Text)
			}
		}
	}
	return b.String()
}
