// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"time"

	"github.com/tomtom215/cinematch/internal/cache"
	"github.com/tomtom215/cinematch/internal/recommend/algorithms"
)

// RatingVector maps movie id to a star rating. 0 means unrated.
type RatingVector map[int]float64

// GenreRecommendation is one entry of a genre popularity ranking.
type GenreRecommendation = algorithms.GenreEntry

// Prediction is an IBCF prediction annotated for presentation.
type Prediction struct {
	MovieID int      `json:"movie_id"`
	Title   string   `json:"title"`
	Genres  []string `json:"genres,omitempty"`
	Score   float64  `json:"score"`
}

// Explanation is a prediction broken down into neighbour contributions.
type Explanation struct {
	algorithms.Explanation
	Title string `json:"title"`
}

// SampleMovie is a movie offered to a new user for rating.
type SampleMovie struct {
	MovieID int      `json:"movie_id"`
	Title   string   `json:"title"`
	Genres  []string `json:"genres"`
	// FormKey is the form field name that carries this movie's rating.
	FormKey string `json:"form_key"`
}

// Stats is a point-in-time view of the engine.
type Stats struct {
	Movies            int         `json:"movies"`
	Ratings           int         `json:"ratings"`
	Users             int         `json:"users"`
	DroppedRatings    int         `json:"dropped_ratings"`
	Genres            int         `json:"genres"`
	SimilarityRows    int         `json:"similarity_rows"`
	SimilarityEntries int         `json:"similarity_entries"`
	Neighbors         int         `json:"neighbors"`
	GenreRequests     int64       `json:"genre_requests"`
	PredictRequests   int64       `json:"predict_requests"`
	RejectedRequests  int64       `json:"rejected_requests"`
	Cache             cache.Stats `json:"cache"`
	WarmedGenres      int64       `json:"warmed_genres"`
	StartedAt         time.Time   `json:"started_at"`
}
