// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package catalog holds the in-memory rating store: the movie catalog and the
// immutable (user, movie, rating) triples loaded at startup.
//
// A Store is built once by NewStore and never mutated afterwards, so every
// accessor is safe for concurrent use without locking. Ratings that reference
// a movie missing from the catalog are dropped while building, and per-movie
// rating counts are precomputed for the genre ranker.
package catalog
