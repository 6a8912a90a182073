// SPDX-License-Identifier: MIT
// Package multiplex: sentinel errors. Callers branch via errors.Is; call
// sites attach layer names with fmt.Errorf("...: %w").

package multiplex

import "errors"

var (
	// ErrNoLayers indicates an empty layer list was passed to NewMultiplex.
	ErrNoLayers = errors.New("multiplex: at least one layer is required")

	// ErrNilLayer indicates a layer carries a nil *core.Graph.
	ErrNilLayer = errors.New("multiplex: nil layer graph")

	// ErrDuplicateLayerName indicates two layers resolve to the same name
	// after defaulting, which would make the name→layer mapping ambiguous.
	ErrDuplicateLayerName = errors.New("multiplex: duplicate layer name")

	// ErrNilMultiplex indicates a nil *Multiplex where one is required.
	ErrNilMultiplex = errors.New("multiplex: multiplex is nil")

	// ErrPoolMismatch indicates a layer whose vertex set does not equal the
	// pool; such a multiplex would silently misalign downstream matrices.
	ErrPoolMismatch = errors.New("multiplex: layer vertex set differs from pool")
)
