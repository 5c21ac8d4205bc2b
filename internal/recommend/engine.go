// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/cache"
	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/metrics"
	"github.com/tomtom215/cinematch/internal/recommend/algorithms"
)

// FormKeyPrefix prefixes the form field carrying a movie's rating, as in
// rating_m260.
const FormKeyPrefix = "rating_m"

// FormKey returns the form field name for movieID.
func FormKey(movieID int) string {
	return FormKeyPrefix + strconv.Itoa(movieID)
}

// Engine serves genre rankings and IBCF predictions. It is safe for
// concurrent use.
type Engine struct {
	cfg    Config
	store  *catalog.Store
	sim    *algorithms.PrunedMatrix
	genres cache.Cacher[[]GenreRecommendation]
	logger zerolog.Logger

	// knownGenres holds lowercased tags; only these rankings are cached.
	knownGenres map[string]struct{}
	startedAt   time.Time

	genreRequests   atomic.Int64
	predictRequests atomic.Int64
	rejected        atomic.Int64
	warmed          atomic.Int64
}

// NewEngine wires the engine. A nil store or matrix is ErrDataUnavailable.
// The engine does not own genreCache; the caller closes it.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg Config, store *catalog.Store, sim *algorithms.PrunedMatrix,
	genreCache cache.Cacher[[]GenreRecommendation], logger zerolog.Logger) (*Engine, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: rating store not loaded", ErrDataUnavailable)
	}
	if sim == nil {
		return nil, fmt.Errorf("%w: similarity matrix not loaded", ErrDataUnavailable)
	}
	if genreCache == nil {
		return nil, errors.New("genre cache is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	known := make(map[string]struct{})
	for _, g := range store.Genres() {
		known[strings.ToLower(g)] = struct{}{}
	}

	return &Engine{
		cfg:         cfg,
		store:       store,
		sim:         sim,
		genres:      genreCache,
		logger:      logger.With().Str("component", "recommend").Logger(),
		knownGenres: known,
		startedAt:   time.Now(),
	}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

func genreKey(genre string, limit int) string {
	return "genre:" + strings.ToLower(genre) + ":" + strconv.Itoa(limit)
}

// RankByGenre returns the most rated movies tagged genre. limit 0 selects
// the configured default. The second result reports a cache hit.
//
// Callers must not modify the returned slice.
func (e *Engine) RankByGenre(ctx context.Context, genre string, limit int) ([]GenreRecommendation, bool, error) {
	start := time.Now()
	e.genreRequests.Add(1)

	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	genre = strings.TrimSpace(genre)
	if genre == "" {
		return nil, false, e.reject(metrics.StrategyGenre, start, ErrMissingGenre)
	}
	if limit == 0 {
		limit = e.cfg.GenreLimit
	}
	if limit < 0 || limit > e.cfg.MaxGenreLimit {
		return nil, false, e.reject(metrics.StrategyGenre, start,
			invalidf("limit", "must be between 1 and %d", e.cfg.MaxGenreLimit))
	}

	// Unknown genres rank nothing; skipping the cache keeps arbitrary input
	// from growing it.
	if _, ok := e.knownGenres[strings.ToLower(genre)]; !ok {
		metrics.RecordRecommendation(metrics.StrategyGenre, metrics.OutcomeOK, time.Since(start))
		return []GenreRecommendation{}, false, nil
	}

	key := genreKey(genre, limit)
	if ranked, ok := e.genres.Get(key); ok {
		metrics.RecordGenreCache(true)
		metrics.RecordRecommendation(metrics.StrategyGenre, metrics.OutcomeOK, time.Since(start))
		return ranked, true, nil
	}
	metrics.RecordGenreCache(false)

	ranked, err := algorithms.RankByGenre(e.store, genre, limit)
	if err != nil {
		return nil, false, e.reject(metrics.StrategyGenre, start, err)
	}
	e.genres.Set(key, ranked)

	e.logger.Debug().
		Str("genre", genre).
		Int("limit", limit).
		Int("results", len(ranked)).
		Dur("took", time.Since(start)).
		Msg("genre ranking computed")

	metrics.RecordRecommendation(metrics.StrategyGenre, metrics.OutcomeOK, time.Since(start))
	return ranked, false, nil
}

// validateRatings rejects unknown movies, non-finite values and values off
// the star scale, and requires at least one rated movie.
func (e *Engine) validateRatings(ratings RatingVector) error {
	if len(ratings) == 0 {
		return invalidf("ratings", "at least one rating is required")
	}

	ids := make([]int, 0, len(ratings))
	for id := range ratings {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	rated := 0
	for _, id := range ids {
		v := ratings[id]
		if !e.store.HasMovie(id) {
			return invalidf("ratings", "unknown movie id %d", id)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return invalidf("ratings", "movie %d: rating is not a number", id)
		}
		if v == 0 {
			continue
		}
		if !catalog.ValidRating(v) {
			return invalidf("ratings", "movie %d: rating %v outside [%v, %v]",
				id, v, catalog.MinRating, catalog.MaxRating)
		}
		rated++
	}
	if rated == 0 {
		return invalidf("ratings", "at least one movie must be rated")
	}
	return nil
}

// Predict returns the top-N IBCF predictions for movies the user has not
// rated. Candidates without a rated neighbour are left out.
func (e *Engine) Predict(ctx context.Context, ratings RatingVector) ([]Prediction, error) {
	start := time.Now()
	e.predictRequests.Add(1)

	if err := e.validateRatings(ratings); err != nil {
		return nil, e.reject(metrics.StrategyPredict, start, err)
	}

	res, err := algorithms.PredictContext(ctx, e.sim, algorithms.Rescale(ratings), e.cfg.TopN)
	if err != nil {
		metrics.RecordRecommendation(metrics.StrategyPredict, metrics.OutcomeError, time.Since(start))
		return nil, fmt.Errorf("predict: %w", err)
	}
	metrics.ExcludedCandidates.Add(float64(res.Excluded))

	out := make([]Prediction, 0, len(res.Top))
	for _, s := range res.Top {
		p := Prediction{MovieID: s.ID, Score: s.Score}
		if m, ok := e.store.Movie(s.ID); ok {
			p.Title = m.Title
			p.Genres = m.Genres
		}
		out = append(out, p)
	}

	e.logger.Debug().
		Int("rated", len(ratings)).
		Int("candidates", res.Candidates).
		Int("excluded", res.Excluded).
		Int("returned", len(out)).
		Dur("took", time.Since(start)).
		Msg("predictions computed")

	metrics.RecordRecommendation(metrics.StrategyPredict, metrics.OutcomeOK, time.Since(start))
	return out, nil
}

// Explain breaks the prediction for movieID into neighbour contributions.
// It returns ErrNoPrediction when the movie is rated or has no rated
// neighbour.
func (e *Engine) Explain(ctx context.Context, ratings RatingVector, movieID int) (*Explanation, error) {
	start := time.Now()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if movieID <= 0 {
		return nil, e.reject(metrics.StrategyExplain, start, invalidf("movie_id", "must be positive"))
	}
	if err := e.validateRatings(ratings); err != nil {
		return nil, e.reject(metrics.StrategyExplain, start, err)
	}

	exp, ok := algorithms.Explain(e.sim, algorithms.Rescale(ratings), movieID)
	if !ok {
		metrics.RecordRecommendation(metrics.StrategyExplain, metrics.OutcomeOK, time.Since(start))
		return nil, fmt.Errorf("%w %d", ErrNoPrediction, movieID)
	}

	out := &Explanation{Explanation: exp}
	if m, found := e.store.Movie(movieID); found {
		out.Title = m.Title
	}
	metrics.RecordRecommendation(metrics.StrategyExplain, metrics.OutcomeOK, time.Since(start))
	return out, nil
}

func (e *Engine) reject(strategy string, start time.Time, err error) error {
	e.rejected.Add(1)
	metrics.RecordRecommendation(strategy, metrics.OutcomeInvalid, time.Since(start))
	return err
}

// Genres returns the distinct genre tags in ascending order.
func (e *Engine) Genres() []string {
	return e.store.Genres()
}

// SampleMovies returns the configured rating sample, skipping ids missing
// from the catalog.
func (e *Engine) SampleMovies() []SampleMovie {
	out := make([]SampleMovie, 0, len(e.cfg.SampleMovieIDs))
	for _, id := range e.cfg.SampleMovieIDs {
		m, ok := e.store.Movie(id)
		if !ok {
			continue
		}
		out = append(out, SampleMovie{MovieID: id, Title: m.Title, Genres: m.Genres, FormKey: FormKey(id)})
	}
	return out
}

// WarmGenres precomputes the default-limit ranking of every genre so the
// first requests hit the cache. wait, when non-nil, is called before each
// genre and can pace the work; its error stops warming.
func (e *Engine) WarmGenres(ctx context.Context, wait func(context.Context) error) (int, error) {
	n := 0
	for _, g := range e.store.Genres() {
		if wait != nil {
			if err := wait(ctx); err != nil {
				return n, err
			}
		}
		if err := ctx.Err(); err != nil {
			return n, err
		}
		if _, _, err := e.RankByGenre(ctx, g, 0); err != nil {
			return n, fmt.Errorf("warm genre %q: %w", g, err)
		}
		n++
		e.warmed.Add(1)
		metrics.WarmupGenres.Inc()
	}
	return n, nil
}

// ClearCache drops every memoized genre ranking.
func (e *Engine) ClearCache() {
	e.genres.Clear()
	e.logger.Info().Msg("genre cache cleared")
}

// Stats returns a snapshot of engine state.
func (e *Engine) Stats() Stats {
	return Stats{
		Movies:            e.store.NumMovies(),
		Ratings:           e.store.NumRatings(),
		Users:             e.store.NumUsers(),
		DroppedRatings:    e.store.Dropped(),
		Genres:            len(e.knownGenres),
		SimilarityRows:    e.sim.Len(),
		SimilarityEntries: e.sim.Entries(),
		Neighbors:         e.sim.K(),
		GenreRequests:     e.genreRequests.Load(),
		PredictRequests:   e.predictRequests.Load(),
		RejectedRequests:  e.rejected.Load(),
		Cache:             e.genres.GetStats(),
		WarmedGenres:      e.warmed.Load(),
		StartedAt:         e.startedAt,
	}
}
