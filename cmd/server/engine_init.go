// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/cinematch/internal/cache"
	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/database"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/recommend/algorithms"
	"github.com/tomtom215/cinematch/internal/snapshot"
)

// EngineComponents is everything initEngine opens. Close releases it in
// reverse order.
type EngineComponents struct {
	Engine   *recommend.Engine
	Cache    cache.Cacher[[]recommend.GenreRecommendation]
	Snapshot *snapshot.Store
}

// Close stops the cache cleanup and closes the snapshot store.
func (c *EngineComponents) Close() {
	if c.Cache != nil {
		c.Cache.Close()
	}
	if c.Snapshot != nil {
		if err := c.Snapshot.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing snapshot store")
		}
	}
}

// initEngine loads the catalog and similarity matrix through db and builds
// the engine. Errors wrap recommend.ErrDataUnavailable when data is missing
// or malformed.
func initEngine(ctx context.Context, cfg *config.Config, db *database.DB) (*EngineComponents, error) {
	start := time.Now()
	comps := &EngineComponents{}

	store, err := db.LoadCatalog(ctx, &cfg.Data)
	if err != nil {
		return nil, err
	}

	k := cfg.Recommend.Neighbors
	build := func(ctx context.Context) (*algorithms.PrunedMatrix, error) {
		return db.LoadSimilarity(ctx, &cfg.Data, k)
	}

	var sim *algorithms.PrunedMatrix
	if cfg.Snapshot.Enabled {
		sim, err = loadWithSnapshot(ctx, cfg, comps, build)
	} else {
		sim, err = build(ctx)
	}
	if err != nil {
		comps.Close()
		return nil, err
	}

	genreCache, err := cache.NewCacher[[]recommend.GenreRecommendation](cfg.Cache.CacherConfig())
	if err != nil {
		comps.Close()
		return nil, fmt.Errorf("genre cache: %w", err)
	}
	comps.Cache = genreCache

	engine, err := recommend.NewEngine(cfg.Recommend.EngineConfig(), store, sim, genreCache,
		logging.WithComponent("recommend"))
	if err != nil {
		comps.Close()
		return nil, err
	}
	comps.Engine = engine

	metrics.SetDataGauges(store.NumMovies(), store.NumRatings(), sim.Entries())
	logging.Info().
		Int("movies", store.NumMovies()).
		Int("similarity_rows", sim.Len()).
		Int("similarity_entries", sim.Entries()).
		Int("k", sim.K()).
		Dur("took", time.Since(start)).
		Msg("Recommendation engine ready")
	return comps, nil
}

// loadWithSnapshot opens the snapshot store and returns the stored matrix
// when its fingerprint matches the similarity file, building and saving it
// otherwise. A store that cannot be opened is skipped with a warning.
func loadWithSnapshot(ctx context.Context, cfg *config.Config, comps *EngineComponents,
	build func(context.Context) (*algorithms.PrunedMatrix, error)) (*algorithms.PrunedMatrix, error) {
	fp, err := snapshot.Fingerprint(cfg.Data.SimilarityPath, cfg.Recommend.Neighbors)
	if err != nil {
		// The file is missing or unreadable; the loader reports it properly.
		return build(ctx)
	}

	store, err := snapshot.Open(cfg.Snapshot.Path)
	if err != nil {
		logging.Warn().Err(err).Str("path", cfg.Snapshot.Path).Msg("Similarity snapshot unavailable, loading from CSV")
		return build(ctx)
	}
	comps.Snapshot = store

	sim, hit, err := store.LoadOrBuild(ctx, fp, build)
	if err != nil {
		return nil, err
	}
	logging.Info().Bool("snapshot_hit", hit).Msg("Similarity matrix ready")
	return sim, nil
}
