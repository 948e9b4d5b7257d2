package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/knock-sh/knock/internal/domain"
	"github.com/knock-sh/knock/internal/ports"
)

const defaultOllamaBaseURL = "http://localhost:11434"

type ollamaProvider struct {
	settings   domain.OllamaSettings
	httpClient *http.Client
}

func newOllamaProvider(settings domain.OllamaSettings, client *http.Client) ports.Provider {
	return &ollamaProvider{
		settings:   settings,
		httpClient: client,
	}
}

func (o *ollamaProvider) Name() string {
	return domain.ProviderOllama
}

func (o *ollamaProvider) Send(ctx context.Context, req ports.ProviderRequest) (string, error) {
	payload := ollamaRequest{
		Model: valueOrDefault(o.settings.Model, "llama3.1"),
		Messages: []ollamaMessage{
			{Role: "system", Content: req.Instructions},
			{Role: "user", Content: req.Prompt},
		},
		Stream: false,
		Options: ollamaOptions{
			Temperature: req.Temperature,
			NumPredict:  req.MaxTokens,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	endpoint := valueOrDefault(o.settings.BaseURL, defaultOllamaBaseURL) + "/api/chat"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("content-type", "application/json")

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("ollama: %w (is the Ollama server running?)", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("ollama: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &domain.HTTPError{
			Provider:   "ollama",
			StatusCode: resp.StatusCode,
			Body:       string(raw),
			Hint:       "is the Ollama server running?",
		}
	}

	var decoded ollamaResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("ollama: decode response: %w", err)
	}
	if decoded.Message.Content == "" {
		return "", domain.ErrEmptyResponse
	}
	return decoded.Message.Content, nil
}

type ollamaRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
	Options  ollamaOptions   `json:"options"`
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
}

type ollamaResponse struct {
	Message ollamaMessage `json:"message"`
}
