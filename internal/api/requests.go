// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinematch/internal/recommend"
)

// maxRequestBodyBytes bounds predict and explain bodies.
const maxRequestBodyBytes = 1 << 20

// Form field prefixes for ratings. rating_m260 is what the sample page
// emits; rating_260 is accepted as well.
const (
	formPrefix      = recommend.FormKeyPrefix
	shortFormPrefix = "rating_"
)

// errBadRequestBody marks malformed request bodies.
var errBadRequestBody = errors.New("malformed request body")

// ratingsBody is the JSON request shape.
type ratingsBody struct {
	Ratings map[int]float64 `json:"ratings"`
}

// decodeRatings reads a rating vector from a JSON or form body.
func decodeRatings(w http.ResponseWriter, r *http.Request) (recommend.RatingVector, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var body ratingsBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return nil, fmt.Errorf("%w: %w", errBadRequestBody, err)
		}
		return recommend.RatingVector(body.Ratings), nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("%w: %w", errBadRequestBody, err)
	}
	return parseFormRatings(r.PostForm)
}

// parseFormRatings collects rating_m<id> and rating_<id> fields. Blank
// values are unrated and skipped; other fields are ignored.
func parseFormRatings(form map[string][]string) (recommend.RatingVector, error) {
	ratings := make(recommend.RatingVector)
	for key, values := range form {
		id, ok := formMovieID(key)
		if !ok || len(values) == 0 {
			continue
		}
		raw := strings.TrimSpace(values[len(values)-1])
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: field %s: %q is not a number", errBadRequestBody, key, raw)
		}
		ratings[id] = v
	}
	return ratings, nil
}

// formMovieID extracts the movie id from a rating field name.
func formMovieID(key string) (int, bool) {
	var rest string
	switch {
	case strings.HasPrefix(key, formPrefix):
		rest = strings.TrimPrefix(key, formPrefix)
	case strings.HasPrefix(key, shortFormPrefix):
		rest = strings.TrimPrefix(key, shortFormPrefix)
	default:
		return 0, false
	}
	id, err := strconv.Atoi(rest)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
