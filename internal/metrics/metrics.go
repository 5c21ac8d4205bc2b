// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recommendation strategies used as label values.
const (
	StrategyGenre   = "genre"
	StrategyPredict = "predict"
	StrategyExplain = "explain"
)

// Outcomes used as label values.
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Recommendation Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Recommendation requests by strategy and outcome",
		},
		[]string{"strategy", "outcome"},
	)

	RecommendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "Time spent computing recommendations",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"strategy"},
	)

	GenreCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_genre_cache_total",
			Help: "Genre ranking cache lookups by result (hit or miss)",
		},
		[]string{"result"},
	)

	ExcludedCandidates = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_excluded_candidates_total",
			Help: "Prediction candidates dropped for a zero similarity denominator",
		},
	)

	WarmupGenres = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_warmup_genres_total",
			Help: "Genre rankings precomputed by the warmup service",
		},
	)

	// Data Metrics
	CatalogMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_movies",
			Help: "Movies in the loaded catalog",
		},
	)

	CatalogRatings = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_ratings",
			Help: "Ratings retained after joining with the catalog",
		},
	)

	SimilarityEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "similarity_pruned_entries",
			Help: "Defined entries in the pruned similarity matrix",
		},
	)

	DataLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "data_load_duration_seconds",
			Help:    "Duration of startup data loads",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"source"},
	)

	DataLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "data_load_errors_total",
			Help: "Failed startup data loads",
		},
		[]string{"source"},
	)

	SnapshotLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "similarity_snapshot_total",
			Help: "Similarity snapshot lookups by result (hit, miss, saved)",
		},
		[]string{"result"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records one engine call.
func RecordRecommendation(strategy, outcome string, duration time.Duration) {
	RecommendRequests.WithLabelValues(strategy, outcome).Inc()
	RecommendDuration.WithLabelValues(strategy).Observe(duration.Seconds())
}

// RecordGenreCache records a genre cache lookup.
func RecordGenreCache(hit bool) {
	if hit {
		GenreCacheLookups.WithLabelValues("hit").Inc()
		return
	}
	GenreCacheLookups.WithLabelValues("miss").Inc()
}

// RecordDataLoad records a startup load of source (movies, ratings, similarity).
func RecordDataLoad(source string, duration time.Duration, err error) {
	DataLoadDuration.WithLabelValues(source).Observe(duration.Seconds())
	if err != nil {
		DataLoadErrors.WithLabelValues(source).Inc()
	}
}

// RecordSnapshot records a snapshot hit, miss, or save.
func RecordSnapshot(result string) {
	SnapshotLookups.WithLabelValues(result).Inc()
}

// SetDataGauges publishes the sizes of the loaded data.
func SetDataGauges(movies, ratings, similarityEntries int) {
	CatalogMovies.Set(float64(movies))
	CatalogRatings.Set(float64(ratings))
	SimilarityEntries.Set(float64(similarityEntries))
}
