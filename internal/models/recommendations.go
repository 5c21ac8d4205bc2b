// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package models

import (
	"time"

	"github.com/tomtom215/cinematch/internal/recommend"
)

// GenreRecommendationsResponse is the popularity ranking for one genre.
type GenreRecommendationsResponse struct {
	Genre           string                          `json:"genre"`
	Limit           int                             `json:"limit,omitempty"`
	Recommendations []recommend.GenreRecommendation `json:"recommendations"`
}

// PredictResponse lists IBCF predictions for a submitted rating vector.
type PredictResponse struct {
	Rated           int                    `json:"rated"`
	Recommendations []recommend.Prediction `json:"recommendations"`
}

// ExplainResponse breaks one prediction into neighbour contributions.
type ExplainResponse struct {
	Explanation *recommend.Explanation `json:"explanation"`
}

// GenresResponse lists the distinct genre tags in the catalog.
type GenresResponse struct {
	Genres []string `json:"genres"`
}

// SampleMoviesResponse lists the movies offered for rating.
type SampleMoviesResponse struct {
	Movies []recommend.SampleMovie `json:"movies"`
	// FormPrefix prefixes the movie id in form field names.
	FormPrefix string `json:"form_prefix"`
}

// StatusResponse reports engine statistics.
type StatusResponse struct {
	Engine recommend.Stats `json:"engine"`
	Uptime string          `json:"uptime"`
}

// HealthStatus is the health endpoint payload.
type HealthStatus struct {
	Status    string    `json:"status"`
	Version   string    `json:"version,omitempty"`
	Ready     bool      `json:"ready"`
	Movies    int       `json:"movies,omitempty"`
	Uptime    float64   `json:"uptime_seconds"`
	Timestamp time.Time `json:"timestamp"`
}
