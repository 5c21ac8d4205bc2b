// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package validation

// MaxRatingsPerRequest bounds the size of a submitted rating vector. It
// matches the max= tag on the rating maps below.
const MaxRatingsPerRequest = 5000

// GenreRequest is the genre ranking query. An empty genre is left for the
// engine, which answers with MISSING_GENRE.
type GenreRequest struct {
	Genre string `json:"genre" validate:"max=100"`
	Limit int    `json:"limit" validate:"gte=0,lte=10000"`
}

// PredictRequest is a rating vector keyed by movie id. Zero means unrated.
type PredictRequest struct {
	Ratings map[int]float64 `json:"ratings" validate:"required,min=1,max=5000,dive,keys,gt=0,endkeys,gte=0,lte=5"`
}

// ExplainRequest is a prediction request for a single target movie.
type ExplainRequest struct {
	MovieID int             `json:"movie_id" validate:"gt=0"`
	Ratings map[int]float64 `json:"ratings" validate:"required,min=1,max=5000,dive,keys,gt=0,endkeys,gte=0,lte=5"`
}
