// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package algorithms

import (
	"errors"
	"strings"

	"github.com/tomtom215/cinematch/internal/catalog"
)

// ErrMissingGenre is returned by RankByGenre for an empty or blank genre.
var ErrMissingGenre = errors.New("missing genre")

// MovieSource is the slice of the rating store the genre ranker reads.
// *catalog.Store satisfies it.
type MovieSource interface {
	MovieIDs() []int
	Movie(id int) (catalog.Movie, bool)
	RatingCount(id int) int
}

// GenreEntry is one row of a genre popularity ranking.
type GenreEntry struct {
	MovieID int    `json:"movie_id"`
	Title   string `json:"title"`
	Count   int    `json:"count"`
}

// RankByGenre ranks the movies tagged with genre by how many ratings they
// received, most rated first, ties broken by ascending movie id. At most
// limit entries are returned.
//
// The genre must equal a whole tag, ignoring case. Movies without any
// rating are not ranked. An unknown genre yields an empty result, not an
// error.
func RankByGenre(src MovieSource, genre string, limit int) ([]GenreEntry, error) {
	genre = strings.TrimSpace(genre)
	if genre == "" {
		return nil, ErrMissingGenre
	}
	if limit <= 0 {
		return []GenreEntry{}, nil
	}

	top := NewTopK(limit)
	for _, id := range src.MovieIDs() {
		count := src.RatingCount(id)
		if count == 0 {
			continue
		}
		m, ok := src.Movie(id)
		if !ok || !m.HasGenre(genre) {
			continue
		}
		top.Push(Scored{ID: id, Score: float64(count)})
	}

	ranked := top.Sorted()
	out := make([]GenreEntry, 0, len(ranked))
	for _, s := range ranked {
		m, _ := src.Movie(s.ID)
		out = append(out, GenreEntry{MovieID: s.ID, Title: m.Title, Count: int(s.Score)})
	}
	return out, nil
}
