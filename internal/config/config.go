// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"time"

	"github.com/tomtom215/cinematch/internal/cache"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// Config is the complete service configuration.
type Config struct {
	Data      DataConfig      `koanf:"data"`
	Database  DatabaseConfig  `koanf:"database"`
	Snapshot  SnapshotConfig  `koanf:"snapshot"`
	Recommend RecommendConfig `koanf:"recommend"`
	Cache     CacheConfig     `koanf:"cache"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// DataConfig locates the MovieLens files and describes their format.
type DataConfig struct {
	MoviesPath     string `koanf:"movies_path"`
	RatingsPath    string `koanf:"ratings_path"`
	SimilarityPath string `koanf:"similarity_path"`

	// Delimiter separates fields in the movie and rating files. ml-1m uses "::".
	Delimiter string `koanf:"delimiter"`

	// Header is true when the movie and rating files start with a header row.
	Header bool `koanf:"header"`

	// Quote is the quoting character; empty disables quoting.
	Quote string `koanf:"quote"`

	// MoviesEncoding is utf-8 or latin-1. ml-1m movies.dat is latin-1.
	MoviesEncoding string `koanf:"movies_encoding"`
}

// DatabaseConfig tunes the DuckDB instance used to parse input files.
type DatabaseConfig struct {
	// Path is the DuckDB file, or ":memory:".
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"` // 0 = runtime.NumCPU()
}

// SnapshotConfig controls the badger-backed pruned similarity snapshot.
type SnapshotConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"`
}

// RecommendConfig holds engine tunables.
type RecommendConfig struct {
	GenreLimit     int   `koanf:"genre_limit"`
	MaxGenreLimit  int   `koanf:"max_genre_limit"`
	TopN           int   `koanf:"top_n"`
	Neighbors      int   `koanf:"neighbors"`
	SampleMovieIDs []int `koanf:"sample_movie_ids"`

	// WarmupEnabled precomputes every genre ranking after startup.
	WarmupEnabled bool `koanf:"warmup_enabled"`

	// WarmupRate caps warmup at this many genres per second; 0 is unlimited.
	WarmupRate float64 `koanf:"warmup_rate"`
}

// EngineConfig converts to the engine's configuration type.
func (r RecommendConfig) EngineConfig() recommend.Config {
	return recommend.Config{
		GenreLimit:     r.GenreLimit,
		MaxGenreLimit:  r.MaxGenreLimit,
		TopN:           r.TopN,
		Neighbors:      r.Neighbors,
		SampleMovieIDs: append([]int(nil), r.SampleMovieIDs...),
	}
}

// CacheConfig selects the genre ranking cache.
type CacheConfig struct {
	Type     string        `koanf:"type"`
	TTL      time.Duration `koanf:"ttl"`
	Capacity int           `koanf:"capacity"`
}

// CacherConfig converts to the cache package's configuration type.
func (c CacheConfig) CacherConfig() cache.CacheConfig {
	return cache.CacheConfig{Type: cache.CacheType(c.Type), TTL: c.TTL, Capacity: c.Capacity}
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// SecurityConfig holds CORS and rate limiting. There is no authentication.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// LoggerConfig converts to the logging package's configuration type.
func (l LoggingConfig) LoggerConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = l.Level
	cfg.Format = l.Format
	cfg.Caller = l.Caller
	return cfg
}
