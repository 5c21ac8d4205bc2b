// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"strings"
	"time"
)

// GenreSeparator separates genre tags in the MovieLens genre column.
const GenreSeparator = "|"

// Rating bounds for the MovieLens star scale.
const (
	MinRating = 1.0
	MaxRating = 5.0
)

// Movie is immutable catalog metadata.
type Movie struct {
	ID     int      `json:"movie_id"`
	Title  string   `json:"title"`
	Genres []string `json:"genres"`
}

// HasGenre reports whether genre equals one of the movie's tags, ignoring
// case. Substrings of a tag never match: "Fi" does not match "Sci-Fi".
func (m Movie) HasGenre(genre string) bool {
	genre = strings.TrimSpace(genre)
	if genre == "" {
		return false
	}
	for _, g := range m.Genres {
		if strings.EqualFold(g, genre) {
			return true
		}
	}
	return false
}

// ParseGenres splits a pipe-delimited genre string into trimmed tags.
// Empty tags are dropped.
func ParseGenres(raw string) []string {
	parts := strings.Split(raw, GenreSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Rating is one user's star rating of a movie.
type Rating struct {
	UserID    int       `json:"user_id"`
	MovieID   int       `json:"movie_id"`
	Value     float64   `json:"rating"`
	Timestamp time.Time `json:"timestamp"`
}

// ValidRating reports whether v lies on the [MinRating, MaxRating] scale.
func ValidRating(v float64) bool {
	return v >= MinRating && v <= MaxRating
}
