// Package services contains the application use cases.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/knock-sh/knock/internal/domain"
	"github.com/knock-sh/knock/internal/infrastructure/cache"
	"github.com/knock-sh/knock/internal/infrastructure/prompt"
	"github.com/knock-sh/knock/internal/ports"
)

// TranslateService orchestrates a single translation request: fingerprint,
// cache lookup, and on a miss one provider call followed by a write-back.
type TranslateService struct {
	Config          domain.Config
	ContextDetector ports.ContextDetector
	ProviderFactory ports.ProviderFactory
	Cache           ports.CacheStore
	Logger          ports.Logger
}

// Run processes one request. A cache hit returns without touching the
// provider; a provider failure is terminal and nothing is written back.
// Explain mode follows the identical pipeline with the command under
// explanation as the input.
func (s *TranslateService) Run(req domain.TranslateRequest) (domain.TranslateResponse, error) {
	if s.ContextDetector == nil || s.ProviderFactory == nil || s.Cache == nil || s.Logger == nil {
		return domain.TranslateResponse{}, errors.New("services.TranslateService dependencies not satisfied")
	}

	ctx := req.Context
	if ctx == nil {
		ctx = context.Background()
	}

	snapshot := s.ContextDetector.Detect()
	key := cache.Key(req.Input, snapshot.OS, snapshot.Shell, req.Mode.String())

	if text, ok := s.Cache.Get(key); ok {
		s.Logger.Debug("cache hit", map[string]interface{}{"key": key})
		return domain.TranslateResponse{Text: text, FromCache: true, ShellContext: snapshot}, nil
	}

	provider, err := s.ProviderFactory.ForConfig(s.Config)
	if err != nil {
		return domain.TranslateResponse{}, fmt.Errorf("provider init: %w", err)
	}

	s.Logger.Info("calling provider", map[string]interface{}{
		"provider": provider.Name(),
		"mode":     req.Mode.String(),
	})

	text, err := provider.Send(ctx, ports.ProviderRequest{
		Instructions: prompt.Instructions(req.Mode),
		Prompt:       prompt.Build(snapshot, req.Input, req.Mode),
		MaxTokens:    prompt.MaxTokens(req.Mode),
		Temperature:  domain.DefaultTemperature,
	})
	if err != nil {
		return domain.TranslateResponse{}, err
	}

	s.Cache.Put(key, text)
	return domain.TranslateResponse{Text: text, FromCache: false, ShellContext: snapshot}, nil
}
