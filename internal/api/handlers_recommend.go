// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/cinematch/internal/models"
	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/validation"
)

// genreParam reads the genre from the path, falling back to the query.
func genreParam(r *http.Request) string {
	if raw := chi.URLParam(r, "genre"); raw != "" {
		if decoded, err := url.PathUnescape(raw); err == nil {
			return decoded
		}
		return raw
	}
	return r.URL.Query().Get("genre")
}

// GenreRecommendations handles GET /api/v1/recommendations/genre/{genre}
//
// @Summary Most popular movies in a genre
// @Description Ranks movies tagged with the genre by number of ratings, most rated first.
// @Tags Recommendations
// @Produce json
// @Param genre path string true "Genre tag, case-insensitive"
// @Param limit query int false "Number of movies (default 10)"
// @Success 200 {object} models.APIResponse{data=models.GenreRecommendationsResponse}
// @Failure 400 {object} models.APIResponse "MISSING_GENRE or INVALID_INPUT"
// @Router /recommendations/genre/{genre} [get]
func (h *Handler) GenreRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit, ok := getIntParam(r, "limit", 0)
	if !ok {
		respondError(w, r, http.StatusBadRequest, models.CodeInvalidInput, "limit must be an integer", nil)
		return
	}
	req := validation.GenreRequest{Genre: strings.TrimSpace(genreParam(r)), Limit: limit}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorWithDetails(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	ranked, cached, err := h.engine.RankByGenre(ctx, req.Genre, req.Limit)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	respondSuccess(w, r, models.GenreRecommendationsResponse{
		Genre:           req.Genre,
		Limit:           req.Limit,
		Recommendations: ranked,
	}, start, cached)
}

// Predict handles POST /api/v1/recommendations/predict
//
// @Summary IBCF recommendations for a new user
// @Description Predicts ratings for unrated movies from the submitted ratings and returns the best ten.
// @Tags Recommendations
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.PredictResponse}
// @Failure 400 {object} models.APIResponse "INVALID_INPUT or VALIDATION_ERROR"
// @Router /recommendations/predict [post]
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	ratings, ok := h.readRatings(w, r)
	if !ok {
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	predictions, err := h.engine.Predict(ctx, ratings)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	rated := 0
	for _, v := range ratings {
		if v != 0 {
			rated++
		}
	}
	respondSuccess(w, r, models.PredictResponse{Rated: rated, Recommendations: predictions}, start, false)
}

// Explain handles POST /api/v1/recommendations/explain/{movieID}
//
// @Summary Explain one prediction
// @Description Lists the rated neighbours that contribute to the movie's predicted score.
// @Tags Recommendations
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param movieID path int true "Movie ID"
// @Success 200 {object} models.APIResponse{data=models.ExplainResponse}
// @Failure 404 {object} models.APIResponse "NO_PREDICTION"
// @Router /recommendations/explain/{movieID} [post]
func (h *Handler) Explain(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	movieID, err := strconv.Atoi(chi.URLParam(r, "movieID"))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, models.CodeInvalidInput, "movie id must be an integer", nil)
		return
	}

	ratings, ok := h.readRatings(w, r)
	if !ok {
		return
	}
	req := validation.ExplainRequest{MovieID: movieID, Ratings: ratings}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorWithDetails(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	exp, err := h.engine.Explain(ctx, ratings, movieID)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	respondSuccess(w, r, models.ExplainResponse{Explanation: exp}, start, false)
}

// readRatings decodes and validates the rating body. It writes the error
// response itself and reports whether the caller should continue.
func (h *Handler) readRatings(w http.ResponseWriter, r *http.Request) (recommend.RatingVector, bool) {
	ratings, err := decodeRatings(w, r)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondError(w, r, http.StatusRequestEntityTooLarge, models.CodeInvalidInput, "Request body too large", nil)
			return nil, false
		}
		respondError(w, r, http.StatusBadRequest, models.CodeInvalidInput, err.Error(), nil)
		return nil, false
	}

	req := validation.PredictRequest{Ratings: ratings}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorWithDetails(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return nil, false
	}
	return ratings, true
}

// Genres handles GET /api/v1/genres
//
// @Summary List genres
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.GenresResponse}
// @Router /genres [get]
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, models.GenresResponse{Genres: h.engine.Genres()}, time.Now(), false)
}

// SampleMovies handles GET /api/v1/movies/sample
//
// @Summary Movies offered for rating
// @Description The fixed sample a new user rates before asking for predictions.
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.SampleMoviesResponse}
// @Router /movies/sample [get]
func (h *Handler) SampleMovies(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, models.SampleMoviesResponse{
		Movies:     h.engine.SampleMovies(),
		FormPrefix: formPrefix,
	}, time.Now(), false)
}

// RecommendationStatus handles GET /api/v1/recommendations/status
//
// @Summary Engine statistics
// @Tags Recommendations
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.StatusResponse}
// @Router /recommendations/status [get]
func (h *Handler) RecommendationStatus(w http.ResponseWriter, r *http.Request) {
	stats := h.engine.Stats()
	respondSuccess(w, r, models.StatusResponse{
		Engine: stats,
		Uptime: time.Since(stats.StartedAt).Truncate(time.Second).String(),
	}, time.Now(), false)
}
