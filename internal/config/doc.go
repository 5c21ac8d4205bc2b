// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package config loads CineMatch configuration with Koanf v2.

Sources are layered, later ones winning:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: CONFIG_PATH, else config.yaml, config.yml, or
    /etc/cinematch/config.yaml
 3. Environment variables listed in envTransformFunc

Unmapped environment variables are ignored. Comma-separated values are split
for slice fields such as CORS_ORIGINS and SAMPLE_MOVIE_IDS.

# Environment Variables

Data:
  - MOVIES_PATH, RATINGS_PATH, SIMILARITY_PATH
  - DATA_DELIMITER (default "::"), DATA_HEADER, DATA_QUOTE, MOVIES_ENCODING

Engine:
  - GENRE_LIMIT, MAX_GENRE_LIMIT, TOP_N, SIMILARITY_NEIGHBORS
  - SAMPLE_MOVIE_IDS, WARMUP_ENABLED, WARMUP_RATE

Cache and snapshot:
  - GENRE_CACHE_TYPE (ttl, lru), GENRE_CACHE_TTL, GENRE_CACHE_CAPACITY
  - SNAPSHOT_ENABLED, SNAPSHOT_PATH

Server:
  - HTTP_PORT, HTTP_HOST, HTTP_TIMEOUT, SHUTDOWN_TIMEOUT
  - CORS_ORIGINS, RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Validation runs after loading; Load returns the first violation.
*/
package config
