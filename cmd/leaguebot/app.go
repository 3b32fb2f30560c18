package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/creativecreature/sheetcache"
	"github.com/creativecreature/sheetcache/internal/boltstore"
	"github.com/creativecreature/sheetcache/internal/config"
	"github.com/creativecreature/sheetcache/internal/logging"
	"github.com/creativecreature/sheetcache/internal/server"
	"github.com/creativecreature/sheetcache/league"
	"github.com/creativecreature/sheetcache/sheets"
)

// app holds everything a command needs.
type app struct {
	cache   *sheetcache.Client
	store   *boltstore.Store
	metrics *server.Metrics
	league  *league.Service
}

// newApp wires the sheets client, the optional bolt store, the range cache
// and the league service together.
func newApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*app, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	client, err := sheets.New(ctx, sheets.Config{
		SpreadsheetID: cfg.Sheets.SpreadsheetID,
		ClientEmail:   cfg.Sheets.ClientEmail,
		PrivateKey:    cfg.Sheets.PrivateKey,
	})
	if err != nil {
		return nil, fmt.Errorf("creating sheets client: %w", err)
	}
	return assemble(cfg, logger, client)
}

// assemble builds the cache in front of fetcher.
func assemble(cfg *config.Config, logger *zap.Logger, fetcher sheetcache.Fetcher) (*app, error) {
	cacheLog := logging.NewCacheLogger(logger)
	a := &app{metrics: server.NewMetrics()}

	opts := []sheetcache.Option{
		sheetcache.WithLog(cacheLog),
		sheetcache.WithMetrics(a.metrics),
	}
	if cfg.Cache.StaleReads {
		opts = append(opts, sheetcache.WithStaleReads())
	}
	if cfg.Cache.BoltPath != "" {
		store, err := boltstore.Open(cfg.Cache.BoltPath, boltstore.Options{Log: cacheLog})
		if err != nil {
			return nil, err
		}
		a.store = store
		opts = append(opts, sheetcache.WithDistributedStorage(store))
	}

	a.cache = sheetcache.New(cfg.TTL(), fetcher, opts...)
	a.league = league.NewService(a.cache)
	logger.Debug("cache ready",
		zap.Duration("ttl", cfg.TTL()),
		zap.Bool("stale_reads", cfg.Cache.StaleReads),
		zap.String("bolt_path", cfg.Cache.BoltPath),
	)
	return a, nil
}

func (a *app) server(logger *zap.Logger) *server.Server {
	opts := []server.Option{server.WithMetrics(a.metrics)}
	if a.store != nil {
		opts = append(opts, server.WithPurger(a.store))
	}
	return server.New(a.league, a.cache, logger, opts...)
}

func (a *app) Close() error {
	if a.store == nil {
		return nil
	}
	if err := a.store.Close(); err != nil {
		return fmt.Errorf("closing bolt store: %w", err)
	}
	return nil
}
