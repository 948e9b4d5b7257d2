package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/knock-sh/knock/internal/domain"
)

func TestLoadSeedsDefaultsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Provider != domain.ProviderOpenAI {
		t.Errorf("Provider = %q, want openai default", cfg.Provider)
	}
	if cfg.Anthropic.APIKeyEnv != "ANTHROPIC_API_KEY" {
		t.Errorf("Anthropic.APIKeyEnv = %q", cfg.Anthropic.APIKeyEnv)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config was not written: %v", err)
	}
}

func TestLoadHydratesPartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := "provider: ollama\nollama:\n  model: codellama:7b\n"
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Provider != domain.ProviderOllama {
		t.Errorf("Provider = %q", cfg.Provider)
	}
	if cfg.Ollama.Model != "codellama:7b" {
		t.Errorf("Ollama.Model = %q", cfg.Ollama.Model)
	}
	if cfg.Ollama.BaseURL == "" {
		t.Error("Ollama.BaseURL default was not hydrated")
	}
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("provider: bedrock\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := NewFileLoader(path).Load(context.Background()); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestPathHonorsEnvOverride(t *testing.T) {
	t.Setenv("KNOCK_CONFIG", "/tmp/custom.yaml")

	if got := NewFileLoader("").Path(); got != "/tmp/custom.yaml" {
		t.Errorf("Path() = %q", got)
	}
}
