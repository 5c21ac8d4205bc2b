// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package algorithms

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"
)

const (
	movieX = 100
	movieY = 200
	movieZ = 300
	movieW = 400
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestRescale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input map[int]float64
		want  map[int]float64
	}{
		{
			name:  "spreads to full scale",
			input: map[int]float64{1: 5, 2: 3, 3: 0},
			want:  map[int]float64{1: 5, 2: 1},
		},
		{
			name:  "midpoint",
			input: map[int]float64{1: 2, 2: 3, 3: 4},
			want:  map[int]float64{1: 1, 2: 3, 3: 5},
		},
		{
			name:  "single rating kept",
			input: map[int]float64{1: 5, 2: 0},
			want:  map[int]float64{1: 5},
		},
		{
			name:  "all equal kept",
			input: map[int]float64{1: 3, 2: 3},
			want:  map[int]float64{1: 3, 2: 3},
		},
		{
			name:  "nothing rated",
			input: map[int]float64{1: 0},
			want:  map[int]float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Rescale(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Rescale(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRescaleDoesNotMutate(t *testing.T) {
	t.Parallel()

	in := map[int]float64{1: 2, 2: 4}
	_ = Rescale(in)
	if in[1] != 2 || in[2] != 4 {
		t.Errorf("Rescale mutated its input: %v", in)
	}
}

// scenarioMatrix has Z's only neighbours X (0.8) and Y (0.4); W has none
// overlapping with the user's ratings.
func scenarioMatrix() *PrunedMatrix {
	return NewPrunedMatrix(30, map[int][]Neighbor{
		movieX: {{movieY, 0.3}},
		movieY: {{movieX, 0.3}},
		movieZ: {{movieX, 0.8}, {movieY, 0.4}},
		movieW: {{movieZ, 0.9}},
	})
}

func TestPredictWeightedAverage(t *testing.T) {
	t.Parallel()

	// Ratings already on the target scale.
	got := Predict(scenarioMatrix(), map[int]float64{movieX: 5, movieY: 3}, DefaultTopN)

	if len(got) != 1 {
		t.Fatalf("Predict() = %v, want exactly movie Z", got)
	}
	if got[0].ID != movieZ {
		t.Errorf("Predict()[0].ID = %d, want %d", got[0].ID, movieZ)
	}
	// (0.8*5 + 0.4*3) / (0.8 + 0.4)
	if !approxEqual(got[0].Score, 4.33, 0.005) {
		t.Errorf("Predict()[0].Score = %.4f, want 4.33", got[0].Score)
	}
}

func TestPredictAfterRescale(t *testing.T) {
	t.Parallel()

	// X=5, Y=3 rescale to 5 and 1, giving (0.8*5 + 0.4*1) / 1.2.
	got := Predict(scenarioMatrix(), Rescale(map[int]float64{movieX: 5, movieY: 3}), DefaultTopN)
	if len(got) != 1 || !approxEqual(got[0].Score, 3.67, 0.005) {
		t.Errorf("Predict() = %v, want [{%d 3.67}]", got, movieZ)
	}
}

func TestPredictSingleRating(t *testing.T) {
	t.Parallel()

	ratings := Rescale(map[int]float64{movieX: 5})
	got := Predict(scenarioMatrix(), ratings, DefaultTopN)

	// Y and Z both reach X; a single rated neighbour reproduces the rating.
	if len(got) != 2 {
		t.Fatalf("Predict() = %v, want Y and Z", got)
	}
	for i, id := range []int{movieY, movieZ} {
		if got[i].ID != id || !approxEqual(got[i].Score, 5, 1e-9) {
			t.Errorf("Predict()[%d] = %v, want {%d 5}", i, got[i], id)
		}
	}
}

func TestPredictExcludesZeroOverlap(t *testing.T) {
	t.Parallel()

	res, err := PredictContext(context.Background(), scenarioMatrix(), map[int]float64{movieX: 5, movieY: 3}, DefaultTopN)
	if err != nil {
		t.Fatalf("PredictContext() error = %v", err)
	}
	for _, s := range res.Top {
		if s.ID == movieW {
			t.Errorf("movie W has no rated neighbour but was scored %v", s.Score)
		}
	}
	if res.Candidates != 2 {
		t.Errorf("Candidates = %d, want 2", res.Candidates)
	}
	if res.Excluded != 1 {
		t.Errorf("Excluded = %d, want 1", res.Excluded)
	}
}

func TestPredictCancelledDenominator(t *testing.T) {
	t.Parallel()

	// Similarities summing to exactly zero leave the prediction undefined.
	sim := NewPrunedMatrix(30, map[int][]Neighbor{
		1: {{2, 0.5}, {3, -0.5}},
		2: nil,
		3: nil,
	})
	got := Predict(sim, map[int]float64{2: 4, 3: 2}, DefaultTopN)
	if len(got) != 0 {
		t.Errorf("Predict() = %v, want empty", got)
	}
}

func TestPredictNeverReturnsRated(t *testing.T) {
	t.Parallel()

	rows := make(map[int][]Neighbor)
	for i := 1; i <= 40; i++ {
		for j := 1; j <= 40; j++ {
			if i != j {
				rows[i] = append(rows[i], Neighbor{ID: j, Score: 1 / float64(i+j)})
			}
		}
	}
	sim := NewPrunedMatrix(30, rows)
	ratings := map[int]float64{1: 5, 7: 1, 13: 4, 22: 3}

	got := Predict(sim, Rescale(ratings), 10)
	if len(got) > 10 {
		t.Fatalf("len(Predict()) = %d, want <= 10", len(got))
	}
	for i, s := range got {
		if ratings[s.ID] != 0 {
			t.Errorf("Predict() returned rated movie %d", s.ID)
		}
		if i > 0 && got[i-1].Score < s.Score {
			t.Errorf("Predict() not sorted: %v before %v", got[i-1], s)
		}
	}
}

func TestPredictTieBreak(t *testing.T) {
	t.Parallel()

	sim := NewPrunedMatrix(30, map[int][]Neighbor{
		1:  nil,
		9:  {{1, 0.5}},
		4:  {{1, 0.2}},
		6:  {{1, 0.9}},
		12: {{1, 0.1}},
	})
	got := Predict(sim, map[int]float64{1: 4}, 3)
	want := []Scored{{4, 4}, {6, 4}, {9, 4}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Predict() = %v, want %v", got, want)
	}
}

func TestPredictContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := PredictContext(ctx, scenarioMatrix(), map[int]float64{movieX: 5}, DefaultTopN)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("PredictContext() error = %v, want context.Canceled", err)
	}
}

func TestExplain(t *testing.T) {
	t.Parallel()

	sim := scenarioMatrix()
	ratings := map[int]float64{movieX: 5, movieY: 3}

	exp, ok := Explain(sim, ratings, movieZ)
	if !ok {
		t.Fatal("Explain(Z) ok = false")
	}
	if !approxEqual(exp.Score, 4.3333, 0.0001) {
		t.Errorf("Score = %v, want 4.3333", exp.Score)
	}
	if len(exp.Contributions) != 2 || exp.Contributions[0].MovieID != movieX {
		t.Errorf("Contributions = %+v, want X first", exp.Contributions)
	}
	if !approxEqual(exp.Contributions[0].Weighted, 4.0, 1e-9) {
		t.Errorf("X weighted = %v, want 4", exp.Contributions[0].Weighted)
	}

	pred := Predict(sim, ratings, 1)
	if len(pred) != 1 || pred[0].Score != exp.Score {
		t.Errorf("Explain score %v differs from Predict %v", exp.Score, pred)
	}

	if _, ok := Explain(sim, ratings, movieX); ok {
		t.Error("Explain on a rated movie should report false")
	}
	if _, ok := Explain(sim, ratings, movieW); ok {
		t.Error("Explain on a zero-overlap movie should report false")
	}
	if _, ok := Explain(sim, ratings, 999); ok {
		t.Error("Explain on an unknown movie should report false")
	}
}
