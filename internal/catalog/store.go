// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrEmptyCatalog is returned when NewStore receives no movies.
var ErrEmptyCatalog = errors.New("catalog contains no movies")

// Store is the read-only rating store.
type Store struct {
	movies   map[int]Movie
	ids      []int
	ratings  []Rating
	counts   map[int]int
	genres   []string
	dropped  int
	numUsers int
}

// NewStore indexes movies and ratings. Duplicate movie ids and ratings
// outside [MinRating, MaxRating] are errors. Ratings for unknown movies are
// dropped and counted in Dropped.
func NewStore(movies []Movie, ratings []Rating) (*Store, error) {
	if len(movies) == 0 {
		return nil, ErrEmptyCatalog
	}

	s := &Store{
		movies: make(map[int]Movie, len(movies)),
		ids:    make([]int, 0, len(movies)),
		counts: make(map[int]int),
	}

	genreSet := make(map[string]string)
	for _, m := range movies {
		if _, dup := s.movies[m.ID]; dup {
			return nil, fmt.Errorf("duplicate movie id %d", m.ID)
		}
		s.movies[m.ID] = m
		s.ids = append(s.ids, m.ID)
		for _, g := range m.Genres {
			key := strings.ToLower(g)
			if _, ok := genreSet[key]; !ok {
				genreSet[key] = g
			}
		}
	}
	sort.Ints(s.ids)

	s.genres = make([]string, 0, len(genreSet))
	for _, g := range genreSet {
		s.genres = append(s.genres, g)
	}
	sort.Strings(s.genres)

	users := make(map[int]struct{})
	s.ratings = make([]Rating, 0, len(ratings))
	for i, r := range ratings {
		if !ValidRating(r.Value) {
			return nil, fmt.Errorf("rating %d (user %d, movie %d): value %v outside [%v, %v]",
				i, r.UserID, r.MovieID, r.Value, MinRating, MaxRating)
		}
		if _, ok := s.movies[r.MovieID]; !ok {
			s.dropped++
			continue
		}
		s.ratings = append(s.ratings, r)
		s.counts[r.MovieID]++
		users[r.UserID] = struct{}{}
	}
	s.numUsers = len(users)

	return s, nil
}

// Movie looks up a movie by id.
func (s *Store) Movie(id int) (Movie, bool) {
	m, ok := s.movies[id]
	return m, ok
}

// HasMovie reports whether id is in the catalog.
func (s *Store) HasMovie(id int) bool {
	_, ok := s.movies[id]
	return ok
}

// MovieIDs returns all movie ids in ascending order. The slice is shared; do not modify it.
func (s *Store) MovieIDs() []int {
	return s.ids
}

// RatingCount returns how many ratings movie id received.
func (s *Store) RatingCount(id int) int {
	return s.counts[id]
}

// Ratings returns the retained ratings. The slice is shared; do not modify it.
func (s *Store) Ratings() []Rating {
	return s.ratings
}

// Genres returns the distinct genre tags in ascending order, keeping the
// spelling of their first occurrence.
func (s *Store) Genres() []string {
	out := make([]string, len(s.genres))
	copy(out, s.genres)
	return out
}

// NumMovies returns the catalog size.
func (s *Store) NumMovies() int { return len(s.movies) }

// NumRatings returns the number of retained ratings.
func (s *Store) NumRatings() int { return len(s.ratings) }

// NumUsers returns the number of distinct users with a retained rating.
func (s *Store) NumUsers() int { return s.numUsers }

// Dropped returns how many ratings referenced movies missing from the catalog.
func (s *Store) Dropped() int { return s.dropped }
