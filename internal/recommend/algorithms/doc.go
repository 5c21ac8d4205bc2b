// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package algorithms implements the recommendation scoring core.
//
//   - RankByGenre: genre popularity ranking by rating count
//   - TopKPrune: per-row top-K pruning of a movie-movie similarity matrix
//   - Predict: item-based collaborative filtering over a pruned matrix
//
// Every function here is pure. Inputs are never mutated and no state is
// shared between calls, so all of them are safe for concurrent use.
//
// # Ordering
//
// All rankings are deterministic: higher score first, ties broken by the
// lower movie id. TopK implements that order for both pruning and
// prediction.
//
// # Pruned matrices
//
// A PrunedMatrix is asymmetric. Row i keeping column j as a neighbour says
// nothing about row j keeping column i. Lookups report presence explicitly
// through Get's second result, so a stored similarity of exactly 0 is
// distinguishable from an absent pair.
package algorithms
