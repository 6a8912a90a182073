// SPDX-License-Identifier: MIT
// File: supra.go
// Role: Block-diagonal supra-adjacency export over the multiplex's layers.
// Determinism:
//   - Blocks follow layer supply order; within a block, rows/columns follow
//     pool order. Identical multiplexes export identical matrices.

package multiplex

import (
	"fmt"

	"github.com/katalvlaran/multinet/matrix"
)

// SupraAdjacency builds the (N·L)×(N·L) block-diagonal adjacency matrix of
// the multiplex: block (l, l) holds layer l's adjacency indexed by pool
// position; off-diagonal blocks stay zero (inter-layer coupling is the
// consumer's concern, not a structural property of the multiplex).
//
// Edge weights are exported as-is for weighted layers; unweighted layers
// (and zero-weight edges) export presence as 1 so the cell survives sparse
// storage. Undirected edges are mirrored inside their block.
// Complexity: O(L·N + Σ E_i).
func (m *Multiplex) SupraAdjacency() (*matrix.Sparse, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("SupraAdjacency: %w", err)
	}

	n := m.NodeCount()
	supra, err := matrix.NewSparse(n*m.LayerCount(), n*m.LayerCount())
	if err != nil {
		return nil, fmt.Errorf("SupraAdjacency: %w", err)
	}

	for l, name := range m.names {
		g := m.layers[name]
		block, err := matrix.NewSparse(n, n)
		if err != nil {
			return nil, fmt.Errorf("SupraAdjacency: layer %q: %w", name, err)
		}
		weighted := g.Weighted()
		for _, e := range g.Edges() {
			i, ok := m.index[e.From]
			if !ok {
				return nil, fmt.Errorf("SupraAdjacency: layer %q node %q: %w", name, e.From, ErrPoolMismatch)
			}
			j, ok := m.index[e.To]
			if !ok {
				return nil, fmt.Errorf("SupraAdjacency: layer %q node %q: %w", name, e.To, ErrPoolMismatch)
			}
			w := e.Weight
			if !weighted || w == 0 {
				w = 1
			}
			if err = block.Set(i, j, w); err != nil {
				return nil, fmt.Errorf("SupraAdjacency: layer %q: %w", name, err)
			}
			if !e.Directed {
				if err = block.Set(j, i, w); err != nil {
					return nil, fmt.Errorf("SupraAdjacency: layer %q: %w", name, err)
				}
			}
		}
		if err = supra.SetBlock(l*n, l*n, block); err != nil {
			return nil, fmt.Errorf("SupraAdjacency: layer %q: %w", name, err)
		}
	}

	return supra, nil
}
