// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"context"
	"time"

	"github.com/tomtom215/cinematch/internal/recommend"
)

// Recommender is the engine surface the handlers use.
type Recommender interface {
	RankByGenre(ctx context.Context, genre string, limit int) ([]recommend.GenreRecommendation, bool, error)
	Predict(ctx context.Context, ratings recommend.RatingVector) ([]recommend.Prediction, error)
	Explain(ctx context.Context, ratings recommend.RatingVector, movieID int) (*recommend.Explanation, error)
	Genres() []string
	SampleMovies() []recommend.SampleMovie
	Stats() recommend.Stats
}

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response and parsing helpers
//   - handlers_health.go: health endpoints
//   - handlers_recommend.go: genre, predict, explain and status endpoints
type Handler struct {
	engine         Recommender
	db             Pinger
	startTime      time.Time
	version        string
	requestTimeout time.Duration
}

// NewHandler creates a handler. db may be nil, in which case readiness only
// checks the engine.
func NewHandler(engine Recommender, db Pinger, version string, requestTimeout time.Duration) *Handler {
	if requestTimeout <= 0 {
		requestTimeout = 10 * time.Second
	}
	return &Handler{
		engine:         engine,
		db:             db,
		startTime:      time.Now(),
		version:        version,
		requestTimeout: requestTimeout,
	}
}

// withTimeout bounds an engine call by the handler's request timeout.
func (h *Handler) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, h.requestTimeout)
}
