package domain

// Provider names accepted by the config file's provider field.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderOllama    = "ollama"
)

// Config mirrors ~/.knock/config.yaml. It is loaded once at startup and
// treated as read-only for the process lifetime.
type Config struct {
	Provider  string            `yaml:"provider"`
	OpenAI    OpenAISettings    `yaml:"openai"`
	Anthropic AnthropicSettings `yaml:"anthropic"`
	Ollama    OllamaSettings    `yaml:"ollama"`
}

// OpenAISettings configures the hosted OpenAI backend.
type OpenAISettings struct {
	Model     string `yaml:"model"`
	BaseURL   string `yaml:"base_url"`
	APIKeyEnv string `yaml:"api_key_env"`
}

// AnthropicSettings configures the hosted Anthropic backend.
type AnthropicSettings struct {
	Model     string `yaml:"model"`
	APIKeyEnv string `yaml:"api_key_env"`
}

// OllamaSettings configures a self-hosted Ollama backend.
type OllamaSettings struct {
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}
