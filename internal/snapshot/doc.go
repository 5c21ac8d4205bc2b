// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package snapshot persists the pruned similarity matrix in BadgerDB so a
// restart can skip reading and pruning the wide CSV.
//
// A snapshot is keyed by a fingerprint of the source file and the neighbour
// bound K. When either changes the stored rows are ignored and rebuilt.
//
// Layout:
//
//	meta            -> JSON Meta
//	simrow:<id>     -> JSON []algorithms.Neighbor
//
// The meta record is written last and removed first, so a half-written
// snapshot never matches a fingerprint.
package snapshot
