// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package algorithms

import (
	"fmt"
	"math"
	"sort"
)

// DefaultNeighbors is the number of neighbours kept per row when pruning.
const DefaultNeighbors = 30

// Matrix is a dense movie-by-movie similarity table as loaded from disk.
// Values[i][j] is the similarity of RowIDs[i] to ColIDs[j]; NaN marks an
// undefined cell.
type Matrix struct {
	RowIDs []int
	ColIDs []int
	Values [][]float64
}

// Validate checks that Values has one row per RowID and one column per ColID.
func (m *Matrix) Validate() error {
	if len(m.Values) != len(m.RowIDs) {
		return fmt.Errorf("similarity matrix has %d rows, want %d", len(m.Values), len(m.RowIDs))
	}
	for i, row := range m.Values {
		if len(row) != len(m.ColIDs) {
			return fmt.Errorf("similarity row %d (movie %d) has %d columns, want %d",
				i, m.RowIDs[i], len(row), len(m.ColIDs))
		}
	}
	return nil
}

// Neighbor is one retained similarity entry of a pruned row.
type Neighbor struct {
	ID    int     `json:"id"`
	Score float64 `json:"score"`
}

// PrunedMatrix is a read-only similarity matrix holding at most K
// neighbours per row. Rows are sorted by score descending, then id
// ascending.
type PrunedMatrix struct {
	k    int
	ids  []int
	rows map[int][]Neighbor
	// index gives O(1) presence checks for Get.
	index map[int]map[int]float64
}

// TopKPrune keeps, for each row, the k largest finite similarities. NaN,
// ±Inf and the diagonal are never kept. Ties at the cut-off go to the lower
// column id. Every row id is retained even when its row ends up empty.
func TopKPrune(m *Matrix, k int) *PrunedMatrix {
	rows := make(map[int][]Neighbor, len(m.RowIDs))
	for i, rowID := range m.RowIDs {
		if i >= len(m.Values) {
			rows[rowID] = nil
			continue
		}
		rows[rowID] = PruneRow(rowID, m.ColIDs, m.Values[i], k)
	}
	return newPruned(k, rows)
}

// PruneRow keeps the k best finite entries of a single row, best first.
// It lets loaders prune while streaming instead of holding the dense matrix.
func PruneRow(rowID int, colIDs []int, values []float64, k int) []Neighbor {
	if k <= 0 {
		return nil
	}
	top := NewTopK(k)
	for j, colID := range colIDs {
		if j >= len(values) || colID == rowID {
			continue
		}
		v := values[j]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		top.Push(Scored{ID: colID, Score: v})
	}
	kept := top.Sorted()
	row := make([]Neighbor, len(kept))
	for n, s := range kept {
		row[n] = Neighbor{ID: s.ID, Score: s.Score}
	}
	return row
}

// NewPrunedMatrix rebuilds a pruned matrix from stored rows, for example a
// snapshot. Rows are re-sorted, self pairs and non-finite scores are dropped,
// and rows longer than k are cut to k.
func NewPrunedMatrix(k int, rows map[int][]Neighbor) *PrunedMatrix {
	clean := make(map[int][]Neighbor, len(rows))
	for id, row := range rows {
		out := make([]Neighbor, 0, len(row))
		for _, n := range row {
			if n.ID == id || math.IsNaN(n.Score) || math.IsInf(n.Score, 0) {
				continue
			}
			out = append(out, n)
		}
		sort.Slice(out, func(i, j int) bool {
			return better(Scored{ID: out[i].ID, Score: out[i].Score}, Scored{ID: out[j].ID, Score: out[j].Score})
		})
		if k >= 0 && len(out) > k {
			out = out[:k]
		}
		clean[id] = out
	}
	return newPruned(k, clean)
}

func newPruned(k int, rows map[int][]Neighbor) *PrunedMatrix {
	p := &PrunedMatrix{
		k:     k,
		ids:   make([]int, 0, len(rows)),
		rows:  rows,
		index: make(map[int]map[int]float64, len(rows)),
	}
	for id, row := range rows {
		p.ids = append(p.ids, id)
		idx := make(map[int]float64, len(row))
		for _, n := range row {
			idx[n.ID] = n.Score
		}
		p.index[id] = idx
	}
	sort.Ints(p.ids)
	return p
}

// Get returns sim(a, b) and whether the pair survived pruning in row a.
// An absent pair returns (0, false); a stored zero returns (0, true).
func (p *PrunedMatrix) Get(a, b int) (float64, bool) {
	v, ok := p.index[a][b]
	return v, ok
}

// Row returns the neighbours of id, best first. The slice is shared; do not modify it.
func (p *PrunedMatrix) Row(id int) []Neighbor {
	return p.rows[id]
}

// HasRow reports whether id is a row of the matrix.
func (p *PrunedMatrix) HasRow(id int) bool {
	_, ok := p.rows[id]
	return ok
}

// IDs returns the row ids in ascending order. The slice is shared; do not modify it.
func (p *PrunedMatrix) IDs() []int { return p.ids }

// Len returns the number of rows.
func (p *PrunedMatrix) Len() int { return len(p.ids) }

// K returns the per-row neighbour bound used when pruning.
func (p *PrunedMatrix) K() int { return p.k }

// Entries returns the number of defined entries across all rows.
func (p *PrunedMatrix) Entries() int {
	n := 0
	for _, row := range p.rows {
		n += len(row)
	}
	return n
}

// Rows returns a copy of the row map, suitable for persisting.
func (p *PrunedMatrix) Rows() map[int][]Neighbor {
	out := make(map[int][]Neighbor, len(p.rows))
	for id, row := range p.rows {
		cp := make([]Neighbor, len(row))
		copy(cp, row)
		out[id] = cp
	}
	return out
}
