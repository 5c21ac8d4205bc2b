// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
	"golang.org/x/time/rate"
)

// GenreWarmer precomputes genre rankings. wait, when non-nil, is called
// before each genre.
type GenreWarmer interface {
	WarmGenres(ctx context.Context, wait func(context.Context) error) (int, error)
}

// WarmupService fills the genre ranking cache once at startup, paced by a
// token bucket so it does not compete with live requests.
type WarmupService struct {
	warmer  GenreWarmer
	limiter *rate.Limiter
	logger  zerolog.Logger
	name    string
}

// NewWarmupService creates the service. perSecond is the number of genres
// ranked per second; zero or less disables pacing.
//
//nolint:gocritic // zerolog.Logger is passed by value throughout
func NewWarmupService(warmer GenreWarmer, perSecond float64, logger zerolog.Logger) *WarmupService {
	var limiter *rate.Limiter
	if perSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
	return &WarmupService{
		warmer:  warmer,
		limiter: limiter,
		logger:  logger.With().Str("service", "genre-warmup").Logger(),
		name:    "genre-warmup",
	}
}

// Serve implements suture.Service. After one complete pass it returns
// suture.ErrDoNotRestart; a failed pass is returned for the supervisor to
// retry.
func (s *WarmupService) Serve(ctx context.Context) error {
	start := time.Now()

	var wait func(context.Context) error
	if s.limiter != nil {
		wait = s.limiter.Wait
	}

	n, err := s.warmer.WarmGenres(ctx, wait)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			s.logger.Debug().Int("warmed", n).Msg("genre warmup interrupted")
			return ctxErr
		}
		return fmt.Errorf("genre warmup after %d genres: %w", n, err)
	}

	s.logger.Info().
		Int("genres", n).
		Dur("took", time.Since(start)).
		Msg("genre cache warmed")
	return suture.ErrDoNotRestart
}

// String names the service in supervisor events.
func (s *WarmupService) String() string {
	return s.name
}
