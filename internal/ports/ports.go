// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and
// external adapters (infrastructure). The application depends on these
// abstractions rather than on concrete HTTP clients, databases, or CLI
// frameworks, so tests can substitute any of them.
package ports

import (
	"context"

	"github.com/knock-sh/knock/internal/domain"
)

// ConfigProvider loads the configuration once at startup.
// Implementations typically read from ~/.knock/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// Provider defines the generation capability shared by every backend.
// Each implementation wraps one remote model API; a failure on the
// configured provider is terminal for the request (no retry, no fallback).
type Provider interface {
	Name() string
	Send(ctx context.Context, req ProviderRequest) (string, error)
}

// ProviderRequest is the normalized request dispatched to a backend.
type ProviderRequest struct {
	Instructions string
	Prompt       string
	MaxTokens    int
	Temperature  float64
}

// ProviderFactory builds the single provider selected by configuration.
type ProviderFactory interface {
	ForConfig(cfg domain.Config) (Provider, error)
}

// CacheStore is the content-addressed response cache. Lookups never fail:
// a storage or decode problem is reported as a miss so the pipeline can
// still produce a result from the provider.
type CacheStore interface {
	Get(key string) (string, bool)
	Put(key, response string)
}

// ContextDetector captures the shell environment snapshot.
type ContextDetector interface {
	Detect() domain.ShellContext
}

// HistoryStore persists prior translations as an append-only log.
type HistoryStore interface {
	Add(record domain.HistoryRecord) error
	Recent(limit int) ([]domain.HistoryRecord, error)
	Search(filter string) ([]domain.HistoryRecord, error)
}

// Clipboard provides cross-platform clipboard integration.
type Clipboard interface {
	Copy(text string) error
	Enabled() bool
}

// ConfirmationPrompter asks the user before executing a generated command.
type ConfirmationPrompter interface {
	Confirm(command string) (bool, error)
}

// CommandExecutor runs the approved command in the user's shell.
type CommandExecutor interface {
	Execute(ctx context.Context, command string) (domain.ExecutionResult, error)
}

// Logger provides structured logging abstraction for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
