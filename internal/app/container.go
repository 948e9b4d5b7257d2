// Package app wires application services with infrastructure adapters.
package app

import (
	"context"

	"github.com/knock-sh/knock/internal/infrastructure/ai"
	"github.com/knock-sh/knock/internal/infrastructure/cache"
	"github.com/knock-sh/knock/internal/infrastructure/config"
	"github.com/knock-sh/knock/internal/infrastructure/history"
	"github.com/knock-sh/knock/internal/infrastructure/shellctx"
	"github.com/knock-sh/knock/internal/pkg/logger"
	"github.com/knock-sh/knock/internal/ports"
	"github.com/knock-sh/knock/internal/services"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	TranslateService *services.TranslateService
	ConfigLoader     *config.FileLoader
	CacheStore       *cache.SQLiteStore
	HistoryStore     ports.HistoryStore
	Logger           ports.Logger
}

// BuildContainer constructs the dependency graph. Config is loaded once
// here; the cache store is opened once and shared for the process
// lifetime (closed implicitly at exit).
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.NewStd(verbose)
	cacheStore := cache.NewSQLiteStore(cache.DefaultPath())
	historyStore := history.NewSQLiteStore()

	translateService := &services.TranslateService{
		Config:          cfg,
		ContextDetector: shellctx.NewDetector(),
		ProviderFactory: ai.NewFactory(),
		Cache:           cacheStore,
		Logger:          log,
	}

	return &Container{
		TranslateService: translateService,
		ConfigLoader:     cfgLoader,
		CacheStore:       cacheStore,
		HistoryStore:     historyStore,
		Logger:           log,
	}, nil
}
