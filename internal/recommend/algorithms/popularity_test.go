// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package algorithms

import (
	"errors"
	"reflect"
	"testing"

	"github.com/tomtom215/cinematch/internal/catalog"
)

// fakeSource is a MovieSource with explicit counts.
type fakeSource struct {
	movies map[int]catalog.Movie
	counts map[int]int
	ids    []int
}

func newFakeSource(movies []catalog.Movie, counts map[int]int) *fakeSource {
	f := &fakeSource{movies: make(map[int]catalog.Movie), counts: counts}
	for _, m := range movies {
		f.movies[m.ID] = m
		f.ids = append(f.ids, m.ID)
	}
	return f
}

func (f *fakeSource) MovieIDs() []int { return f.ids }

func (f *fakeSource) Movie(id int) (catalog.Movie, bool) {
	m, ok := f.movies[id]
	return m, ok
}

func (f *fakeSource) RatingCount(id int) int { return f.counts[id] }

func comedySource() *fakeSource {
	return newFakeSource([]catalog.Movie{
		{ID: 1, Title: "A", Genres: []string{"Comedy"}},
		{ID: 2, Title: "B", Genres: []string{"Comedy", "Romance"}},
		{ID: 3, Title: "C", Genres: []string{"Comedy"}},
		{ID: 4, Title: "D", Genres: []string{"Drama"}},
		{ID: 5, Title: "E", Genres: []string{"Dark Comedy"}},
		{ID: 6, Title: "F", Genres: []string{"Comedy"}},
	}, map[int]int{1: 5, 2: 9, 3: 2, 4: 50, 5: 40})
}

func TestRankByGenre(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		genre string
		limit int
		want  []GenreEntry
	}{
		{
			name:  "comedy limit 2",
			genre: "comedy",
			limit: 2,
			want:  []GenreEntry{{2, "B", 9}, {1, "A", 5}},
		},
		{
			name:  "exact tag only and unrated movies skipped",
			genre: "COMEDY",
			limit: 10,
			want:  []GenreEntry{{2, "B", 9}, {1, "A", 5}, {3, "C", 2}},
		},
		{
			name:  "unknown genre",
			genre: "Western",
			limit: 10,
			want:  []GenreEntry{},
		},
		{
			name:  "substring does not match",
			genre: "Dark",
			limit: 10,
			want:  []GenreEntry{},
		},
		{
			name:  "zero limit",
			genre: "Comedy",
			limit: 0,
			want:  []GenreEntry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := RankByGenre(comedySource(), tt.genre, tt.limit)
			if err != nil {
				t.Fatalf("RankByGenre() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("RankByGenre(%q, %d) = %v, want %v", tt.genre, tt.limit, got, tt.want)
			}
		})
	}
}

func TestRankByGenreTieBreak(t *testing.T) {
	t.Parallel()

	src := newFakeSource([]catalog.Movie{
		{ID: 30, Title: "Z", Genres: []string{"War"}},
		{ID: 10, Title: "X", Genres: []string{"War"}},
		{ID: 20, Title: "Y", Genres: []string{"War"}},
	}, map[int]int{10: 4, 20: 4, 30: 4})

	got, err := RankByGenre(src, "war", 2)
	if err != nil {
		t.Fatalf("RankByGenre() error = %v", err)
	}
	want := []GenreEntry{{10, "X", 4}, {20, "Y", 4}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RankByGenre() = %v, want %v", got, want)
	}
}

func TestRankByGenreMissingGenre(t *testing.T) {
	t.Parallel()

	for _, genre := range []string{"", "   "} {
		if _, err := RankByGenre(comedySource(), genre, 10); !errors.Is(err, ErrMissingGenre) {
			t.Errorf("RankByGenre(%q) error = %v, want ErrMissingGenre", genre, err)
		}
	}
}

func TestRankByGenreWithStore(t *testing.T) {
	t.Parallel()

	store, err := catalog.NewStore(
		[]catalog.Movie{
			{ID: 1, Title: "Toy Story (1995)", Genres: []string{"Animation", "Comedy"}},
			{ID: 2, Title: "Heat (1995)", Genres: []string{"Action", "Crime"}},
		},
		[]catalog.Rating{{UserID: 1, MovieID: 1, Value: 4}, {UserID: 2, MovieID: 1, Value: 5}, {UserID: 1, MovieID: 2, Value: 3}},
	)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	got, err := RankByGenre(store, "animation", 10)
	if err != nil {
		t.Fatalf("RankByGenre() error = %v", err)
	}
	if len(got) != 1 || got[0].MovieID != 1 || got[0].Count != 2 {
		t.Errorf("RankByGenre() = %v, want [{1 Toy Story (1995) 2}]", got)
	}
}
