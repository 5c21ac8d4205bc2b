// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package recommend is the recommendation engine behind the HTTP API.
//
// Engine binds the rating store, the pruned similarity matrix and the genre
// ranking cache, validates caller input, and delegates scoring to the
// algorithms package:
//
//	eng, err := recommend.NewEngine(cfg, store, pruned, genreCache, logger)
//	top, cached, err := eng.RankByGenre(ctx, "Comedy", 0)
//	preds, err := eng.Predict(ctx, recommend.RatingVector{260: 5, 1198: 4})
//
// # Errors
//
// Invalid input surfaces as *InputError, which matches ErrInvalidInput under
// errors.Is. A blank genre is ErrMissingGenre. Candidates without a defined
// prediction are dropped silently. Missing data at construction time is
// ErrDataUnavailable and is fatal to the caller.
//
// # Concurrency
//
// Engine is safe for concurrent use. The store and matrix are read-only; the
// genre cache serialises its own writers.
package recommend
