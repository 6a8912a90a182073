// SPDX-License-Identifier: MIT
// File: blocks.go
// Role: Block placement (SetBlock) and uniform block replication
//       (ReplicateBlocks) — the supra-matrix expansion kernel.
// Determinism:
//   - Replication order is block-row asc, block-col asc; cell order within a
//     block follows the source's row-major NonZero order.

package matrix

import "fmt"

// SetBlock copies every non-zero cell of b into m, offset by (r0, c0).
//
// The destination region [r0, r0+b.Rows()) × [c0, c0+b.Cols()) must lie
// entirely inside m; otherwise ErrOutOfRange is returned and m is untouched.
// Existing cells inside the region that b does not cover are preserved.
// Complexity: O(nnz(b)).
func (m *Sparse) SetBlock(r0, c0 int, b *Sparse) error {
	if m == nil || b == nil {
		return ErrNilMatrix
	}
	if r0 < 0 || c0 < 0 || r0+b.rows > m.rows || c0+b.cols > m.cols {
		return fmt.Errorf("SetBlock(%d,%d): block %dx%d into %dx%d: %w",
			r0, c0, b.rows, b.cols, m.rows, m.cols, ErrOutOfRange)
	}

	for k, v := range b.cells {
		m.cells[coord{r0 + k.r, c0 + k.c}] = v
	}

	return nil
}

// ReplicateBlocks tiles b into a rowBlocks×colBlocks grid of verbatim copies.
//
// The result has shape (b.Rows()·rowBlocks) × (b.Cols()·colBlocks); block
// (i, j) occupies rows [i·b.Rows(), (i+1)·b.Rows()) and columns
// [j·b.Cols(), (j+1)·b.Cols()) and equals b exactly. Therefore
// nnz(result) = nnz(b)·rowBlocks·colBlocks. Sparsity is preserved end to
// end; no dense intermediate is ever allocated.
// Complexity: O(nnz(b)·rowBlocks·colBlocks).
func ReplicateBlocks(b *Sparse, rowBlocks, colBlocks int) (*Sparse, error) {
	if b == nil {
		return nil, ErrNilMatrix
	}
	if rowBlocks <= 0 || colBlocks <= 0 {
		return nil, fmt.Errorf("ReplicateBlocks(%d,%d): %w", rowBlocks, colBlocks, ErrBadBlockCount)
	}

	out, err := NewSparse(b.rows*rowBlocks, b.cols*colBlocks)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rowBlocks; i++ {
		for j := 0; j < colBlocks; j++ {
			if err = out.SetBlock(i*b.rows, j*b.cols, b); err != nil {
				// Unreachable: offsets are exact multiples of the block shape.
				return nil, err
			}
		}
	}

	return out, nil
}
