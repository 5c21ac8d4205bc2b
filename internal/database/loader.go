// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// Load sources, used as metric labels.
const (
	SourceMovies     = "movies"
	SourceRatings    = "ratings"
	SourceSimilarity = "similarity"
)

const (
	movieColumns  = "{'movie_id': 'INTEGER', 'title': 'VARCHAR', 'genres': 'VARCHAR'}"
	ratingColumns = "{'user_id': 'INTEGER', 'movie_id': 'INTEGER', 'rating': 'DOUBLE', 'ts': 'BIGINT'}"
)

// quoteLiteral renders s as a DuckDB string literal.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// normalizeEncoding maps accepted spellings onto DuckDB's encoding names.
func normalizeEncoding(enc string) string {
	switch strings.ToLower(strings.TrimSpace(enc)) {
	case "latin-1", "latin1", "iso-8859-1":
		return "latin-1"
	default:
		return "utf-8"
	}
}

// readCSV builds a read_csv call with explicit columns and no sniffing.
func readCSV(path string, data *config.DataConfig, encoding, columns string) string {
	return fmt.Sprintf("read_csv(%s, delim=%s, header=%t, quote=%s, escape=%s, encoding=%s, auto_detect=false, columns=%s)",
		quoteLiteral(path),
		quoteLiteral(data.Delimiter),
		data.Header,
		quoteLiteral(data.Quote),
		quoteLiteral(data.Quote),
		quoteLiteral(normalizeEncoding(encoding)),
		columns,
	)
}

// checkFile turns a missing or unreadable input into ErrDataUnavailable.
func checkFile(source, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s file %s: %w", recommend.ErrDataUnavailable, source, path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s file %s is a directory", recommend.ErrDataUnavailable, source, path)
	}
	return nil
}

// LoadMovies reads the movie table: id, title, pipe-separated genres.
func (db *DB) LoadMovies(ctx context.Context, data *config.DataConfig) (movies []catalog.Movie, err error) {
	start := time.Now()
	defer func() { metrics.RecordDataLoad(SourceMovies, time.Since(start), err) }()

	if err := checkFile(SourceMovies, data.MoviesPath); err != nil {
		return nil, err
	}

	query := "SELECT movie_id, title, genres FROM " +
		readCSV(data.MoviesPath, data, data.MoviesEncoding, movieColumns)

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read movies from %s: %w", recommend.ErrDataUnavailable, data.MoviesPath, err)
	}
	defer closeWithLog(rows, "movie rows")

	for rows.Next() {
		var (
			id     sql.NullInt64
			title  sql.NullString
			genres sql.NullString
		)
		if err := rows.Scan(&id, &title, &genres); err != nil {
			return nil, fmt.Errorf("failed to scan movie row: %w", err)
		}
		if !id.Valid {
			continue
		}
		movies = append(movies, catalog.Movie{
			ID:     int(id.Int64),
			Title:  strings.TrimSpace(title.String),
			Genres: catalog.ParseGenres(genres.String),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read movies from %s: %w", recommend.ErrDataUnavailable, data.MoviesPath, err)
	}

	logging.Debug().Int("movies", len(movies)).Str("path", data.MoviesPath).Msg("Loaded movies")
	return movies, nil
}

// LoadRatings reads the rating table: user, movie, rating, unix timestamp.
func (db *DB) LoadRatings(ctx context.Context, data *config.DataConfig) (ratings []catalog.Rating, err error) {
	start := time.Now()
	defer func() { metrics.RecordDataLoad(SourceRatings, time.Since(start), err) }()

	if err := checkFile(SourceRatings, data.RatingsPath); err != nil {
		return nil, err
	}

	query := "SELECT user_id, movie_id, rating, ts FROM " +
		readCSV(data.RatingsPath, data, "utf-8", ratingColumns) +
		" WHERE user_id IS NOT NULL AND movie_id IS NOT NULL AND rating IS NOT NULL"

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read ratings from %s: %w", recommend.ErrDataUnavailable, data.RatingsPath, err)
	}
	defer closeWithLog(rows, "rating rows")

	for rows.Next() {
		var (
			r  catalog.Rating
			ts sql.NullInt64
		)
		if err := rows.Scan(&r.UserID, &r.MovieID, &r.Value, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan rating row: %w", err)
		}
		if ts.Valid {
			r.Timestamp = time.Unix(ts.Int64, 0).UTC()
		}
		ratings = append(ratings, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read ratings from %s: %w", recommend.ErrDataUnavailable, data.RatingsPath, err)
	}

	logging.Debug().Int("ratings", len(ratings)).Str("path", data.RatingsPath).Msg("Loaded ratings")
	return ratings, nil
}

// LoadCatalog loads movies and ratings and indexes them into a Store.
func (db *DB) LoadCatalog(ctx context.Context, data *config.DataConfig) (*catalog.Store, error) {
	movies, err := db.LoadMovies(ctx, data)
	if err != nil {
		return nil, err
	}
	ratings, err := db.LoadRatings(ctx, data)
	if err != nil {
		return nil, err
	}

	store, err := catalog.NewStore(movies, ratings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", recommend.ErrDataUnavailable, err)
	}

	if store.Dropped() > 0 {
		logging.Warn().Int("dropped", store.Dropped()).Msg("Ignored ratings for movies missing from the catalog")
	}
	logging.Info().
		Int("movies", store.NumMovies()).
		Int("ratings", store.NumRatings()).
		Int("users", store.NumUsers()).
		Int("genres", len(store.Genres())).
		Msg("Catalog loaded")
	return store, nil
}
