// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package algorithms

import "sort"

// Scored pairs a movie id with a score.
type Scored struct {
	ID    int     `json:"movie_id"`
	Score float64 `json:"score"`
}

// better reports whether a ranks ahead of b: higher score, then lower id.
func better(a, b Scored) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.ID < b.ID
}

// TopK keeps the k best Scored values seen so far in O(log k) per Push.
//
// Internally it is a min-heap whose root is the worst retained entry, so a
// new candidate only has to beat the root to get in. Not safe for
// concurrent use.
type TopK struct {
	k    int
	heap []Scored
}

// NewTopK creates a selector for at most k entries. k <= 0 retains nothing.
func NewTopK(k int) *TopK {
	if k < 0 {
		k = 0
	}
	c := k
	if c > 1024 {
		c = 1024
	}
	return &TopK{k: k, heap: make([]Scored, 0, c)}
}

// Push offers s. It reports whether s was retained.
func (t *TopK) Push(s Scored) bool {
	if t.k == 0 {
		return false
	}
	if len(t.heap) < t.k {
		t.heap = append(t.heap, s)
		t.up(len(t.heap) - 1)
		return true
	}
	if !better(s, t.heap[0]) {
		return false
	}
	t.heap[0] = s
	t.down(0)
	return true
}

// Len returns the number of retained entries.
func (t *TopK) Len() int { return len(t.heap) }

// Sorted returns the retained entries best first. The TopK stays usable.
func (t *TopK) Sorted() []Scored {
	out := make([]Scored, len(t.heap))
	copy(out, t.heap)
	sort.Slice(out, func(i, j int) bool { return better(out[i], out[j]) })
	return out
}

// worse is the heap order: the root is the entry every other entry beats.
func (t *TopK) worse(i, j int) bool {
	return better(t.heap[j], t.heap[i])
}

func (t *TopK) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !t.worse(i, parent) {
			return
		}
		t.heap[i], t.heap[parent] = t.heap[parent], t.heap[i]
		i = parent
	}
}

func (t *TopK) down(i int) {
	n := len(t.heap)
	for {
		smallest := i
		left, right := 2*i+1, 2*i+2
		if left < n && t.worse(left, smallest) {
			smallest = left
		}
		if right < n && t.worse(right, smallest) {
			smallest = right
		}
		if smallest == i {
			return
		}
		t.heap[i], t.heap[smallest] = t.heap[smallest], t.heap[i]
		i = smallest
	}
}
