// Package engine assembles the store, AI ports and workflow services from
// configuration. UI layers hold one Engine and call through it.
package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/seedstage-inc/seedstage-engine/pkg/ai"
	"github.com/seedstage-inc/seedstage-engine/pkg/config"
	"github.com/seedstage-inc/seedstage-engine/pkg/services"
	"github.com/seedstage-inc/seedstage-engine/pkg/storage"
)

// Engine is the wired progression & persistence engine.
type Engine struct {
	Store    *storage.Store
	Accounts services.AccountsService
	Progress services.ProgressService
	Matching services.MatchingService

	medium *storage.BoltMedium
}

// New opens the store file and wires the services per cfg.
func New(cfg *config.Config, logger *zap.Logger) (*Engine, error) {
	medium, err := storage.OpenBolt(cfg.StorePath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	eng, err := fromMedium(medium, cfg, logger)
	if err != nil {
		_ = medium.Close()
		return nil, err
	}
	eng.medium = medium

	if cfg.SeedDemoData {
		if err := eng.seedDemoData(context.Background()); err != nil {
			logger.Warn("demo seed incomplete", zap.Error(err))
		}
	}

	return eng, nil
}

// NewInMemory wires the engine over an ephemeral in-memory medium. Intended
// for tests and throwaway sessions.
func NewInMemory(cfg *config.Config, logger *zap.Logger) (*Engine, error) {
	eng, err := fromMedium(storage.NewMemoryMedium(), cfg, logger)
	if err != nil {
		return nil, err
	}
	if cfg.SeedDemoData {
		if err := eng.seedDemoData(context.Background()); err != nil {
			logger.Warn("demo seed incomplete", zap.Error(err))
		}
	}
	return eng, nil
}

func fromMedium(medium storage.Medium, cfg *config.Config, logger *zap.Logger) (*Engine, error) {
	reviewer, matcher, err := ai.NewFromConfig(cfg.AI, logger)
	if err != nil {
		return nil, fmt.Errorf("create AI ports: %w", err)
	}
	reviewer = ai.NewResilientReviewer(reviewer, cfg.AI.CallTimeout(), nil)
	matcher = ai.NewResilientMatcher(matcher, cfg.AI.CallTimeout(), nil)

	store := storage.New(medium, logger)
	return &Engine{
		Store:    store,
		Accounts: services.NewAccountsService(store, reviewer, logger),
		Progress: services.NewProgressService(store, reviewer, logger),
		Matching: services.NewMatchingService(store, matcher, cfg.Matching, logger),
	}, nil
}

// Close releases the underlying store file, if any.
func (e *Engine) Close() error {
	if e.medium == nil {
		return nil
	}
	return e.medium.Close()
}
