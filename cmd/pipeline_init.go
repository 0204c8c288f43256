package main

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/leadforge/leadscan-cli/internal/detect"
	"github.com/leadforge/leadscan-cli/internal/fetch"
	"github.com/leadforge/leadscan-cli/internal/pipeline"
	"github.com/leadforge/leadscan-cli/internal/rank"
	"github.com/leadforge/leadscan-cli/internal/sample"
	"github.com/leadforge/leadscan-cli/internal/score"
	"github.com/leadforge/leadscan-cli/internal/store"
)

// scanEnv holds the assembled pipeline and demo generator shared by the
// scan/analyze/serve commands.
type scanEnv struct {
	Pipeline  *pipeline.Pipeline
	Generator *sample.Generator
	Profile   score.Profile

	cache *store.PageCache
}

// Close releases resources held by the scan environment.
func (e *scanEnv) Close() {
	if e.cache != nil {
		_ = e.cache.Close()
	}
}

// initScanEnv builds the fetcher, detector, scorer, ranker and pipeline
// from config. Callers should defer env.Close().
func initScanEnv(ctx context.Context, profile score.Profile) (*scanEnv, error) {
	fetcher := fetch.New(fetch.Options{
		UserAgent:       cfg.Fetch.UserAgent,
		Timeout:         cfg.Fetch.Timeout(),
		MaxRedirects:    cfg.Fetch.MaxRedirects,
		MaxBodyBytes:    cfg.Fetch.MaxBodyBytes,
		PolitenessDelay: cfg.Scan.PolitenessDelay(),
	})

	env := &scanEnv{Profile: profile}
	if cfg.Cache.Enabled {
		cache, err := store.NewPageCache(cfg.Cache.Path, cfg.Cache.TTL())
		if err != nil {
			return nil, eris.Wrap(err, "init page cache")
		}
		if err := cache.Migrate(ctx); err != nil {
			_ = cache.Close()
			return nil, eris.Wrap(err, "migrate page cache")
		}
		env.cache = cache
		fetcher.WithCache(cache)
		zap.L().Info("page cache enabled", zap.String("path", cfg.Cache.Path))
	}

	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	env.Pipeline = pipeline.New(
		fetcher,
		detect.New(detect.DefaultVocabulary()),
		profile,
		rank.New(rng),
		pipeline.Options{
			Concurrency: cfg.Scan.Concurrency,
			MaxLeads:    cfg.Scan.MaxLeads,
		},
	)
	env.Generator = sample.New(rng, profile)
	return env, nil
}
