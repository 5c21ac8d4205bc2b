// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/cinematch/internal/cache"
	"github.com/tomtom215/cinematch/internal/logging"
)

// Rate limit bounds.
const (
	MinRateLimitRequests = 1
	MaxRateLimitRequests = 100000
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateData(); err != nil {
		return err
	}

	if err := c.validateDatabase(); err != nil {
		return err
	}

	if err := c.validateSnapshot(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateCache(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateData() error {
	if c.Data.MoviesPath == "" {
		return fmt.Errorf("MOVIES_PATH is required")
	}
	if c.Data.RatingsPath == "" {
		return fmt.Errorf("RATINGS_PATH is required")
	}
	if c.Data.SimilarityPath == "" {
		return fmt.Errorf("SIMILARITY_PATH is required")
	}
	if c.Data.Delimiter == "" {
		return fmt.Errorf("DATA_DELIMITER must not be empty")
	}
	if len(c.Data.Quote) > 1 {
		return fmt.Errorf("DATA_QUOTE must be a single character or empty, got %q", c.Data.Quote)
	}
	switch strings.ToLower(c.Data.MoviesEncoding) {
	case "utf-8", "utf8", "latin-1", "latin1":
	default:
		return fmt.Errorf("MOVIES_ENCODING must be utf-8 or latin-1, got %q", c.Data.MoviesEncoding)
	}
	return nil
}

func (c *Config) validateDatabase() error {
	if c.Database.Path == "" {
		return fmt.Errorf("DUCKDB_PATH is required")
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must be 0 (auto) or positive")
	}
	return nil
}

func (c *Config) validateSnapshot() error {
	if c.Snapshot.Enabled && c.Snapshot.Path == "" {
		return fmt.Errorf("SNAPSHOT_PATH is required when SNAPSHOT_ENABLED=true")
	}
	return nil
}

// validateRecommend delegates to the engine's own checks and adds warmup limits.
func (c *Config) validateRecommend() error {
	engine := c.Recommend.EngineConfig()
	if err := engine.Validate(); err != nil {
		return err
	}
	if c.Recommend.WarmupRate < 0 {
		return fmt.Errorf("WARMUP_RATE must be 0 (unlimited) or positive")
	}
	return nil
}

func (c *Config) validateCache() error {
	switch cache.CacheType(c.Cache.Type) {
	case cache.CacheTypeTTL:
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("GENRE_CACHE_TTL must be positive for the ttl cache")
		}
	case cache.CacheTypeLRU:
		if c.Cache.Capacity <= 0 {
			return fmt.Errorf("GENRE_CACHE_CAPACITY must be positive for the lru cache")
		}
		if c.Cache.TTL < 0 {
			return fmt.Errorf("GENRE_CACHE_TTL must not be negative")
		}
	default:
		return fmt.Errorf("GENRE_CACHE_TYPE must be ttl or lru, got %q", c.Cache.Type)
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout < time.Second {
		return fmt.Errorf("HTTP_TIMEOUT must be at least 1s")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < MinRateLimitRequests || c.Security.RateLimitReqs > MaxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", MinRateLimitRequests, MaxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < time.Second {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be at least 1s")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error, got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
