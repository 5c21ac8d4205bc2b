// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package metrics registers the Prometheus collectors for CineMatch.

Collectors are package-level promauto variables registered with the default
registry; the API serves them at /metrics through promhttp.

# Available Metrics

API:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests

Recommendations:
  - recommend_requests_total{strategy, outcome}
  - recommend_duration_seconds{strategy}
  - recommend_genre_cache_total{result}
  - recommend_excluded_candidates_total
  - recommend_warmup_genres_total

Data:
  - catalog_movies, catalog_ratings, similarity_pruned_entries
  - data_load_duration_seconds{source}
  - data_load_errors_total{source}
  - similarity_snapshot_total{result}

Helpers such as RecordAPIRequest and RecordRecommendation keep label
spelling in one place.
*/
package metrics
