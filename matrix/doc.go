// SPDX-License-Identifier: MIT

// Package matrix provides the deterministic sparse matrix used by multinet's
// network-construction pipeline.
//
// What:
//
//   - Sparse stores only non-zero cells in a map keyed by (row, col); a zero
//     write deletes the cell, so NNZ is always exact.
//   - SetBlock places one sparse matrix inside another at a row/column offset.
//   - ReplicateBlocks tiles a matrix into an rBlocks×cBlocks grid of verbatim
//     copies — the supra-matrix expansion used for multi-layer coupling.
//     Conceptually Kron(ones(rBlocks, cBlocks), b), never densified.
//   - Dense exports to gonum's mat.Dense for downstream numeric consumers.
//
// Why:
//
//   - Cross-network relation matrices are overwhelmingly sparse; a dense
//     intermediate at supra scale (N·L rows) is disallowed by design.
//   - The propagation engine downstream indexes rows/columns by each
//     network's sorted node pool, so iteration (NonZero) is row-major sorted
//     and therefore reproducible.
//
// Numeric policy:
//
//   - NaN and ±Inf are rejected on Set (ErrNaNInf). Finite values only.
//
// Errors:
//
//	ErrBadShape      - requested dimensions are non-positive.
//	ErrOutOfRange    - row/column index outside bounds, or block overhang.
//	ErrNaNInf        - NaN or ±Inf value where finite values are required.
//	ErrNilMatrix     - nil *Sparse receiver or argument.
//	ErrBadBlockCount - non-positive block grid dimensions.
package matrix
