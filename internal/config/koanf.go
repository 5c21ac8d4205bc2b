// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/cinematch/internal/recommend"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/cinematch/config.yaml",
	"/etc/cinematch/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns the built-in defaults, sized for the MovieLens ml-1m files.
func defaultConfig() *Config {
	engine := recommend.DefaultConfig()
	return &Config{
		Data: DataConfig{
			MoviesPath:     "data/ml-1m/movies.dat",
			RatingsPath:    "data/ml-1m/ratings.dat",
			SimilarityPath: "data/item_similarity.csv",
			Delimiter:      "::",
			Header:         false,
			Quote:          "",
			MoviesEncoding: "latin-1",
		},
		Database: DatabaseConfig{
			Path:      ":memory:",
			MaxMemory: "1GB",
			Threads:   0,
		},
		Snapshot: SnapshotConfig{
			Enabled: true,
			Path:    "data/snapshot",
		},
		Recommend: RecommendConfig{
			GenreLimit:     engine.GenreLimit,
			MaxGenreLimit:  engine.MaxGenreLimit,
			TopN:           engine.TopN,
			Neighbors:      engine.Neighbors,
			SampleMovieIDs: engine.SampleMovieIDs,
			WarmupEnabled:  true,
			WarmupRate:     50,
		},
		Cache: CacheConfig{
			Type:     "lru",
			TTL:      0,
			Capacity: 1000,
		},
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file, and
// environment variables, in that order of increasing priority.
func Load() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "" if none.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths are split on commas when they arrive as a single string.
var sliceConfigPaths = []string{
	"security.cors_origins",
	"recommend.sample_movie_ids",
}

// processSliceFields converts comma-separated env values into slices.
// Values that are already slices (from YAML) are left alone. Numeric slices
// are decoded later by koanf's weakly typed unmarshal.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lowercased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Data files
	"movies_path":     "data.movies_path",
	"ratings_path":    "data.ratings_path",
	"similarity_path": "data.similarity_path",
	"data_delimiter":  "data.delimiter",
	"data_header":     "data.header",
	"data_quote":      "data.quote",
	"movies_encoding": "data.movies_encoding",

	// DuckDB
	"duckdb_path":       "database.path",
	"duckdb_max_memory": "database.max_memory",
	"duckdb_threads":    "database.threads",

	// Snapshot
	"snapshot_enabled": "snapshot.enabled",
	"snapshot_path":    "snapshot.path",

	// Engine
	"genre_limit":          "recommend.genre_limit",
	"max_genre_limit":      "recommend.max_genre_limit",
	"top_n":                "recommend.top_n",
	"similarity_neighbors": "recommend.neighbors",
	"sample_movie_ids":     "recommend.sample_movie_ids",
	"warmup_enabled":       "recommend.warmup_enabled",
	"warmup_rate":          "recommend.warmup_rate",

	// Genre cache
	"genre_cache_type":     "cache.type",
	"genre_cache_ttl":      "cache.ttl",
	"genre_cache_capacity": "cache.capacity",

	// Server
	"http_port":        "server.port",
	"http_host":        "server.host",
	"http_timeout":     "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",

	// Security
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps an environment variable name to its koanf path.
// Unmapped names return "" so unrelated variables never reach the config.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - DUCKDB_PATH -> database.path
//   - SAMPLE_MOVIE_IDS -> recommend.sample_movie_ids
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
