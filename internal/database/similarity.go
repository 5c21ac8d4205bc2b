// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package database

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/recommend/algorithms"
)

// parseMovieLabel accepts "m123", "M123" or "123".
func parseMovieLabel(label string) (int, bool) {
	label = strings.TrimSpace(label)
	label = strings.TrimPrefix(strings.TrimPrefix(label, "m"), "M")
	id, err := strconv.Atoi(label)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// unnamedIndex reports whether the first header cell is an unnamed index,
// as written by dataframe exporters. DuckDB names an empty header cell
// "column0", zero-padded on wide files ("column0000").
func unnamedIndex(header string) bool {
	h := strings.ToLower(strings.TrimSpace(header))
	if h == "" || h == "index" || strings.HasPrefix(h, "unnamed") {
		return true
	}
	if rest, ok := strings.CutPrefix(h, "column"); ok && rest != "" {
		return strings.Trim(rest, "0123456789") == ""
	}
	return false
}

// parseSimilarity converts one cell; empty and NA-like cells are undefined.
func parseSimilarity(cell sql.NullString) (float64, error) {
	if !cell.Valid {
		return math.NaN(), nil
	}
	s := strings.TrimSpace(cell.String)
	switch strings.ToLower(s) {
	case "", "na", "nan", "null", "none":
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

// LoadSimilarity streams the wide similarity matrix and keeps the top k
// neighbours of every row as it goes, so the dense matrix is never held.
//
// The first column holds row labels. Labels with an "m" prefix name the
// movie directly; a plain positional index under an unnamed header maps
// row i to the i-th column's movie.
func (db *DB) LoadSimilarity(ctx context.Context, data *config.DataConfig, k int) (sim *algorithms.PrunedMatrix, err error) {
	start := time.Now()
	defer func() { metrics.RecordDataLoad(SourceSimilarity, time.Since(start), err) }()

	path := data.SimilarityPath
	if err := checkFile(SourceSimilarity, path); err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT * FROM read_csv(%s, header=true, all_varchar=true, delim=',')", quoteLiteral(path))
	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read similarity matrix from %s: %w", recommend.ErrDataUnavailable, path, err)
	}
	defer closeWithLog(rows, "similarity rows")

	header, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read similarity header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("%w: similarity matrix %s has no movie columns", recommend.ErrDataUnavailable, path)
	}

	colIDs := make([]int, len(header)-1)
	for j, label := range header[1:] {
		id, ok := parseMovieLabel(label)
		if !ok {
			return nil, fmt.Errorf("%w: similarity column %d has invalid label %q", recommend.ErrDataUnavailable, j+1, label)
		}
		colIDs[j] = id
	}
	positional := unnamedIndex(header[0])

	cells := make([]sql.NullString, len(header))
	dest := make([]any, len(header))
	for i := range cells {
		dest[i] = &cells[i]
	}
	values := make([]float64, len(colIDs))
	pruned := make(map[int][]algorithms.Neighbor, len(colIDs))

	for i := 0; rows.Next(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan similarity row %d: %w", i, err)
		}

		rowID, err := rowLabel(cells[0].String, i, positional, colIDs)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", recommend.ErrDataUnavailable, err)
		}
		if _, dup := pruned[rowID]; dup {
			return nil, fmt.Errorf("%w: duplicate similarity row for movie %d", recommend.ErrDataUnavailable, rowID)
		}

		for j := range colIDs {
			v, err := parseSimilarity(cells[j+1])
			if err != nil {
				return nil, fmt.Errorf("%w: similarity row %d column %d: %w", recommend.ErrDataUnavailable, rowID, colIDs[j], err)
			}
			values[j] = v
		}
		pruned[rowID] = algorithms.PruneRow(rowID, colIDs, values, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read similarity matrix from %s: %w", recommend.ErrDataUnavailable, path, err)
	}
	if len(pruned) == 0 {
		return nil, fmt.Errorf("%w: similarity matrix %s has no rows", recommend.ErrDataUnavailable, path)
	}

	sim = algorithms.NewPrunedMatrix(k, pruned)
	logging.Info().
		Int("rows", sim.Len()).
		Int("columns", len(colIDs)).
		Int("entries", sim.Entries()).
		Int("k", k).
		Dur("duration", time.Since(start)).
		Msg("Similarity matrix loaded and pruned")
	return sim, nil
}

func rowLabel(label string, i int, positional bool, colIDs []int) (int, error) {
	trimmed := strings.TrimSpace(label)
	if positional && !strings.HasPrefix(strings.ToLower(trimmed), "m") {
		if i >= len(colIDs) {
			return 0, fmt.Errorf("similarity row %d has no matching column", i)
		}
		return colIDs[i], nil
	}
	id, ok := parseMovieLabel(trimmed)
	if !ok {
		return 0, fmt.Errorf("similarity row %d has invalid label %q", i, label)
	}
	return id, nil
}
