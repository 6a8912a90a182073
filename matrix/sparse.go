// SPDX-License-Identifier: MIT
// File: sparse.go
// Role: The Sparse type: construction, indexed access, cloning, and
//       deterministic non-zero iteration.
// Determinism:
//   - NonZero visits cells in row-major sorted order regardless of map
//     iteration order.

package matrix

import (
	"fmt"
	"math"
	"sort"
)

// coord is an ordered (row, col) pair keying one stored cell.
// Using ints keeps the key compact and hash-friendly.
type coord struct {
	r int // row index
	c int // column index
}

// Sparse is a sparse matrix of float64 values.
//
// Only non-zero cells are stored; writing zero deletes the cell. All values
// are finite under the package numeric policy (NaN/Inf rejected on Set).
type Sparse struct {
	rows, cols int               // fixed shape
	cells      map[coord]float64 // non-zero cells only
}

// NewSparse creates a rows×cols Sparse matrix with no stored cells.
// Returns ErrBadShape if rows <= 0 or cols <= 0.
// Complexity: O(1).
func NewSparse(rows, cols int) (*Sparse, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewSparse(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Sparse{rows: rows, cols: cols, cells: make(map[coord]float64)}, nil
}

// Rows returns the number of rows.
// Complexity: O(1).
func (m *Sparse) Rows() int { return m.rows }

// Cols returns the number of columns.
// Complexity: O(1).
func (m *Sparse) Cols() int { return m.cols }

// NNZ returns the exact number of stored non-zero cells.
// Complexity: O(1).
func (m *Sparse) NNZ() int { return len(m.cells) }

// inBounds reports whether (i, j) addresses a valid cell.
func (m *Sparse) inBounds(i, j int) bool {
	return i >= 0 && i < m.rows && j >= 0 && j < m.cols
}

// At retrieves the value at (i, j); absent cells read as 0.
// Returns ErrOutOfRange on invalid indices.
// Complexity: O(1).
func (m *Sparse) At(i, j int) (float64, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if !m.inBounds(i, j) {
		return 0, fmt.Errorf("At(%d,%d): shape %dx%d: %w", i, j, m.rows, m.cols, ErrOutOfRange)
	}

	return m.cells[coord{i, j}], nil
}

// Set assigns value v at (i, j). Writing 0 deletes the cell, keeping NNZ exact.
// Returns ErrOutOfRange on invalid indices and ErrNaNInf on non-finite v.
// Complexity: O(1).
func (m *Sparse) Set(i, j int, v float64) error {
	if m == nil {
		return ErrNilMatrix
	}
	if !m.inBounds(i, j) {
		return fmt.Errorf("Set(%d,%d): shape %dx%d: %w", i, j, m.rows, m.cols, ErrOutOfRange)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("Set(%d,%d): %w", i, j, ErrNaNInf)
	}

	if v == 0 {
		delete(m.cells, coord{i, j})
	} else {
		m.cells[coord{i, j}] = v
	}

	return nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(nnz).
func (m *Sparse) Clone() *Sparse {
	clone := &Sparse{rows: m.rows, cols: m.cols, cells: make(map[coord]float64, len(m.cells))}
	for k, v := range m.cells {
		clone.cells[k] = v
	}

	return clone
}

// NonZero calls fn for every stored cell in row-major sorted order.
// The order is independent of insertion history and map iteration order.
// Complexity: O(nnz log nnz).
func (m *Sparse) NonZero(fn func(i, j int, v float64)) {
	keys := make([]coord, 0, len(m.cells))
	for k := range m.cells {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a].r != keys[b].r {
			return keys[a].r < keys[b].r
		}

		return keys[a].c < keys[b].c
	})
	for _, k := range keys {
		fn(k.r, k.c, m.cells[k])
	}
}

// Equal reports whether two matrices have identical shape and cells.
// Complexity: O(nnz).
func (m *Sparse) Equal(o *Sparse) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.rows != o.rows || m.cols != o.cols || len(m.cells) != len(o.cells) {
		return false
	}
	for k, v := range m.cells {
		if ov, ok := o.cells[k]; !ok || ov != v {
			return false
		}
	}

	return true
}
