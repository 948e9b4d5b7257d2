// Package config loads the knock configuration file.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/knock-sh/knock/assets"
	"github.com/knock-sh/knock/internal/domain"
	"github.com/knock-sh/knock/internal/pkg/filesystem"
	"github.com/knock-sh/knock/internal/ports"
)

// FileLoader loads YAML configuration from ~/.knock/config.yaml
// (overridable via KNOCK_CONFIG). A .env file in the working directory is
// folded into the process environment first, so credential variables can
// live there instead of the shell profile.
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader. An empty path means the default
// location.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider. It runs once at startup; the
// returned config is read-only for the process lifetime. A missing config
// file is seeded with the embedded defaults.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	_ = godotenv.Load()

	path := l.resolvePath()
	if err := ensureConfigDir(path); err != nil {
		return domain.Config{}, fmt.Errorf("ensure config dir: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if err := os.WriteFile(path, assets.DefaultConfigYAML, domain.SecureFilePermissions); err != nil {
				return domain.Config{}, err
			}
			return defaultConfig(), nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return hydrateDefaults(cfg)
}

// Path returns the resolved config file path.
func (l *FileLoader) Path() string {
	return l.resolvePath()
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("KNOCK_CONFIG"); custom != "" {
		return custom
	}
	return filepath.Join(filesystem.UserHomeDir(), ".knock", "config.yaml")
}

func ensureConfigDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
}

func defaultConfig() domain.Config {
	var cfg domain.Config
	if err := yaml.Unmarshal(assets.DefaultConfigYAML, &cfg); err != nil {
		// The embedded YAML is fixed at build time; this branch exists only
		// to keep the loader total.
		return domain.Config{Provider: domain.ProviderOpenAI}
	}
	return cfg
}

func hydrateDefaults(cfg domain.Config) (domain.Config, error) {
	def := defaultConfig()
	switch cfg.Provider {
	case "":
		cfg.Provider = def.Provider
	case domain.ProviderOpenAI, domain.ProviderAnthropic, domain.ProviderOllama:
	default:
		return domain.Config{}, fmt.Errorf("unknown provider %q (expected openai, anthropic, or ollama)", cfg.Provider)
	}
	if cfg.OpenAI.Model == "" {
		cfg.OpenAI.Model = def.OpenAI.Model
	}
	if cfg.OpenAI.APIKeyEnv == "" {
		cfg.OpenAI.APIKeyEnv = def.OpenAI.APIKeyEnv
	}
	if cfg.Anthropic.Model == "" {
		cfg.Anthropic.Model = def.Anthropic.Model
	}
	if cfg.Anthropic.APIKeyEnv == "" {
		cfg.Anthropic.APIKeyEnv = def.Anthropic.APIKeyEnv
	}
	if cfg.Ollama.Model == "" {
		cfg.Ollama.Model = def.Ollama.Model
	}
	if cfg.Ollama.BaseURL == "" {
		cfg.Ollama.BaseURL = def.Ollama.BaseURL
	}
	return cfg, nil
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
