// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Command server runs the CineMatch recommendation API.
//
// # Startup
//
//  1. Configuration: defaults, config.yaml, then environment (Koanf v2)
//  2. Logging: zerolog, JSON or console
//  3. Database: DuckDB, used to read the MovieLens files with read_csv
//  4. Catalog: movies and ratings, joined and indexed in memory
//  5. Similarity: the pruned top-K matrix from the BadgerDB snapshot when
//     its fingerprint matches, otherwise read from CSV, pruned and saved
//  6. Genre cache and recommendation engine
//  7. Supervisor tree: genre warmup (data layer) and HTTP server (api layer)
//
// Missing or malformed data files stop the process before it listens.
//
// # Example Usage
//
//	export MOVIES_PATH=data/ml-1m/movies.dat
//	export RATINGS_PATH=data/ml-1m/ratings.dat
//	export SIMILARITY_PATH=data/item_similarity.csv
//	./cinematch
//
// MovieLens "latest" (comma separated, with a header row):
//
//	export DATA_DELIMITER=, DATA_HEADER=true DATA_QUOTE='"' MOVIES_ENCODING=utf-8
//	./cinematch
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the supervisor tree. The HTTP server drains
// in-flight requests for SHUTDOWN_TIMEOUT, then the snapshot store and the
// database are closed.
package main
