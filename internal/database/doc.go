// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package database parses the MovieLens input files with DuckDB.

DuckDB's read_csv handles the multi-character "::" delimiter, latin-1
movie titles and the very wide similarity matrix, so the service never
hand-parses CSV. The database is usually ":memory:" and holds no tables;
every load is a single SELECT over read_csv.

Usage:

	db, err := database.New(&cfg.Database)
	if err != nil {
	    return err
	}
	defer db.Close()

	store, err := db.LoadCatalog(ctx, &cfg.Data)
	sim, err := db.LoadSimilarity(ctx, &cfg.Data, cfg.Recommend.Neighbors)

Every load records its duration and outcome in the data load metrics.
*/
package database
