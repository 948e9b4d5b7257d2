// Package ai implements the adapters for the remote language model
// backends and the factory that selects one per configuration.
//
// The three backends expose incompatible request and response shapes;
// each adapter normalizes its wire protocol behind ports.Provider. All
// adapters share a single HTTP client. A failure on the configured
// provider is terminal for the request: no retry, no fallback.
package ai

import (
	"fmt"
	"net/http"

	"github.com/knock-sh/knock/internal/domain"
	"github.com/knock-sh/knock/internal/ports"
)

// Factory builds provider instances from configuration.
type Factory struct {
	httpClient *http.Client
}

// NewFactory creates a factory with a configured HTTP client.
func NewFactory() *Factory {
	return &Factory{
		httpClient: &http.Client{Timeout: domain.DefaultHTTPClientTimeout},
	}
}

// ForConfig returns the adapter selected by cfg.Provider.
func (f *Factory) ForConfig(cfg domain.Config) (ports.Provider, error) {
	switch cfg.Provider {
	case domain.ProviderOpenAI:
		return newOpenAIProvider(cfg.OpenAI, f.httpClient), nil
	case domain.ProviderAnthropic:
		return newAnthropicProvider(cfg.Anthropic, f.httpClient), nil
	case domain.ProviderOllama:
		return newOllamaProvider(cfg.Ollama, f.httpClient), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

var _ ports.ProviderFactory = (*Factory)(nil)

func valueOrDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
