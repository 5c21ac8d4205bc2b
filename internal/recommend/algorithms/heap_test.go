// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package algorithms

import (
	"reflect"
	"testing"
)

func TestTopK(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		k     int
		input []Scored
		want  []Scored
	}{
		{
			name:  "keeps best k",
			k:     2,
			input: []Scored{{1, 0.1}, {2, 0.9}, {3, 0.5}, {4, 0.7}},
			want:  []Scored{{2, 0.9}, {4, 0.7}},
		},
		{
			name:  "ties go to lower id",
			k:     2,
			input: []Scored{{9, 1}, {3, 1}, {5, 1}, {1, 0.5}},
			want:  []Scored{{3, 1}, {5, 1}},
		},
		{
			name:  "fewer than k",
			k:     5,
			input: []Scored{{1, -0.2}, {2, 0.3}},
			want:  []Scored{{2, 0.3}, {1, -0.2}},
		},
		{
			name:  "zero k",
			k:     0,
			input: []Scored{{1, 1}},
			want:  []Scored{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			top := NewTopK(tt.k)
			for _, s := range tt.input {
				top.Push(s)
			}
			if got := top.Sorted(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Sorted() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTopKMatchesFullSort(t *testing.T) {
	t.Parallel()

	// Deterministic pseudo-random scores with many duplicates.
	var all []Scored
	for i := 0; i < 500; i++ {
		all = append(all, Scored{ID: i, Score: float64((i * 7919) % 37)})
	}

	top := NewTopK(25)
	for _, s := range all {
		top.Push(s)
	}
	got := top.Sorted()

	if len(got) != 25 {
		t.Fatalf("len(Sorted()) = %d, want 25", len(got))
	}
	for i := 1; i < len(got); i++ {
		if !better(got[i-1], got[i]) {
			t.Errorf("entry %d (%v) not ranked ahead of %v", i-1, got[i-1], got[i])
		}
	}
	worst := got[len(got)-1]
	for _, s := range all {
		if better(s, worst) {
			found := false
			for _, g := range got {
				if g == s {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("%v beats retained worst %v but was dropped", s, worst)
			}
		}
	}
}
