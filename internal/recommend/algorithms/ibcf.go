// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package algorithms

import (
	"context"
	"sort"
)

// DefaultTopN is the number of predictions returned by default.
const DefaultTopN = 10

// ctxCheckEvery is how many candidates are scored between context checks.
const ctxCheckEvery = 512

// Rescale maps the rated (non-zero) entries of ratings linearly from their
// observed [min, max] onto [1, 5]. Unrated entries are dropped. When every
// rated value is equal the scale is undefined and values are returned as
// they are. The input map is never modified.
func Rescale(ratings map[int]float64) map[int]float64 {
	out := make(map[int]float64, len(ratings))
	first := true
	var lo, hi float64
	for id, v := range ratings {
		if v == 0 {
			continue
		}
		out[id] = v
		if first {
			lo, hi = v, v
			first = false
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if first || lo == hi {
		return out
	}
	span := hi - lo
	for id, v := range out {
		out[id] = (v-lo)/span*4 + 1
	}
	return out
}

// PredictResult carries the ranked predictions plus bookkeeping for metrics.
type PredictResult struct {
	Top []Scored
	// Candidates is how many unrated movies were considered.
	Candidates int
	// Excluded counts candidates dropped for a zero similarity denominator.
	Excluded int
}

// Predict scores every unrated row of sim against the user's ratings and
// returns the n best predictions. ratings must already be on the [1, 5]
// scale; see Rescale.
//
//	pred(m) = Σ sim(m,j)·r(j) / Σ sim(m,j)
//
// over the pruned neighbours j of m that the user rated. Candidates whose
// denominator is exactly zero have no defined prediction and are left out.
func Predict(sim *PrunedMatrix, ratings map[int]float64, n int) []Scored {
	res, _ := PredictContext(context.Background(), sim, ratings, n)
	return res.Top
}

// PredictContext is Predict with cancellation between candidate batches.
func PredictContext(ctx context.Context, sim *PrunedMatrix, ratings map[int]float64, n int) (PredictResult, error) {
	var res PredictResult
	top := NewTopK(n)

	for i, m := range sim.IDs() {
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}
		if ratings[m] != 0 {
			continue
		}
		res.Candidates++

		score, ok := weightedScore(sim.Row(m), ratings)
		if !ok {
			res.Excluded++
			continue
		}
		top.Push(Scored{ID: m, Score: score})
	}

	res.Top = top.Sorted()
	return res, nil
}

func weightedScore(row []Neighbor, ratings map[int]float64) (float64, bool) {
	var num, den float64
	for _, nb := range row {
		r := ratings[nb.ID]
		if r == 0 {
			continue
		}
		num += nb.Score * r
		den += nb.Score
	}
	if den == 0 {
		return 0, false
	}
	return num / den, true
}

// Contribution is one neighbour's share of a prediction.
type Contribution struct {
	MovieID    int     `json:"movie_id"`
	Similarity float64 `json:"similarity"`
	Rating     float64 `json:"rating"`
	Weighted   float64 `json:"weighted"`
}

// Explanation breaks a prediction down into neighbour contributions.
type Explanation struct {
	MovieID       int            `json:"movie_id"`
	Score         float64        `json:"score"`
	Numerator     float64        `json:"numerator"`
	Denominator   float64        `json:"denominator"`
	Contributions []Contribution `json:"contributions"`
}

// Explain returns the contributions behind Predict's score for movieID,
// largest weighted contribution first. It returns false when the movie is
// rated, is not a row of sim, or has no defined prediction.
func Explain(sim *PrunedMatrix, ratings map[int]float64, movieID int) (Explanation, bool) {
	if ratings[movieID] != 0 || !sim.HasRow(movieID) {
		return Explanation{}, false
	}

	exp := Explanation{MovieID: movieID}
	for _, nb := range sim.Row(movieID) {
		r := ratings[nb.ID]
		if r == 0 {
			continue
		}
		w := nb.Score * r
		exp.Numerator += w
		exp.Denominator += nb.Score
		exp.Contributions = append(exp.Contributions, Contribution{
			MovieID:    nb.ID,
			Similarity: nb.Score,
			Rating:     r,
			Weighted:   w,
		})
	}
	if exp.Denominator == 0 {
		return Explanation{}, false
	}
	exp.Score = exp.Numerator / exp.Denominator

	sort.Slice(exp.Contributions, func(i, j int) bool {
		a, b := exp.Contributions[i], exp.Contributions[j]
		if a.Weighted != b.Weighted {
			return a.Weighted > b.Weighted
		}
		return a.MovieID < b.MovieID
	})
	return exp, true
}
