// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"fmt"

	"github.com/tomtom215/cinematch/internal/recommend/algorithms"
)

// Config contains the engine's tunables.
type Config struct {
	// GenreLimit is the ranking length when the caller passes 0.
	GenreLimit int `json:"genre_limit"`

	// MaxGenreLimit caps caller-supplied limits.
	MaxGenreLimit int `json:"max_genre_limit"`

	// TopN is the number of IBCF predictions returned.
	TopN int `json:"top_n"`

	// Neighbors is K in the top-K similarity pruning.
	Neighbors int `json:"neighbors"`

	// SampleMovieIDs are the movies offered to new users for rating.
	SampleMovieIDs []int `json:"sample_movie_ids"`
}

// DefaultSampleMovieIDs are Star Wars IV, Saving Private Ryan, Men in Black,
// Terminator 2 and Raiders of the Lost Ark.
var DefaultSampleMovieIDs = []int{260, 2028, 1580, 589, 1198}

// DefaultConfig returns the stock engine configuration.
func DefaultConfig() Config {
	return Config{
		GenreLimit:     10,
		MaxGenreLimit:  100,
		TopN:           algorithms.DefaultTopN,
		Neighbors:      algorithms.DefaultNeighbors,
		SampleMovieIDs: append([]int(nil), DefaultSampleMovieIDs...),
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.GenreLimit <= 0 {
		return fmt.Errorf("genre_limit must be positive, got %d", c.GenreLimit)
	}
	if c.MaxGenreLimit < c.GenreLimit {
		return fmt.Errorf("max_genre_limit (%d) must be >= genre_limit (%d)", c.MaxGenreLimit, c.GenreLimit)
	}
	if c.TopN <= 0 {
		return fmt.Errorf("top_n must be positive, got %d", c.TopN)
	}
	if c.Neighbors <= 0 {
		return fmt.Errorf("neighbors must be positive, got %d", c.Neighbors)
	}
	for _, id := range c.SampleMovieIDs {
		if id <= 0 {
			return fmt.Errorf("sample_movie_ids contains invalid id %d", id)
		}
	}
	return nil
}
