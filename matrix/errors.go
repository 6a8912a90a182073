// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Only package-level sentinels are exposed; callers MUST branch via
// errors.Is. Context is attached at call sites with fmt.Errorf("...: %w").

package matrix

import "errors"

var (
	// ErrBadShape is returned when requested dimensions are non-positive.
	// Creation validates shape before any allocation.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds, or that a block placement would overhang the target matrix.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Sparse (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadBlockCount indicates non-positive block grid dimensions passed
	// to ReplicateBlocks.
	ErrBadBlockCount = errors.New("matrix: block count must be > 0")
)
