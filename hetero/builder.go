// File: builder.go
// Role: NewMultiplexHet — validation, weight normalization, bipartite
//       construction, supra expansion, final assembly.

package hetero

import (
	"fmt"

	"github.com/katalvlaran/multinet/matrix"
	"github.com/katalvlaran/multinet/multiplex"
)

// NewMultiplexHet builds a multiplex-heterogeneous network from two
// already-built multiplexes and a relation table.
//
// Stages, in dependency order:
//  1. Validate both multiplexes (ErrNilMultiplex names which argument
//     failed; malformed structures surface their Validate error).
//  2. Validate the relation table: at least one row (ErrEmptyRelations),
//     no blank node names (ErrBadRelation).
//  3. Normalize weights (see NormalizeWeights).
//  4. Build the N1×N2 bipartite matrix over the two pools; every relation
//     endpoint is checked against its pool first (ErrUnknownNode).
//  5. Expand to the (N1·L1)×(N2·L2) supra-bipartite block matrix.
//  6. Assemble the immutable MultiplexHet.
//
// On any failure no partial object is returned. The multiplex inputs are
// read-only; the caller may keep using them.
// Complexity: O(R + nnz(bipartite)·L1·L2).
func NewMultiplexHet(m1, m2 *multiplex.Multiplex, rels []Relation) (*MultiplexHet, error) {
	// Stage 1: multiplex arguments.
	if m1 == nil {
		return nil, fmt.Errorf("NewMultiplexHet: first argument: %w", ErrNilMultiplex)
	}
	if m2 == nil {
		return nil, fmt.Errorf("NewMultiplexHet: second argument: %w", ErrNilMultiplex)
	}
	if err := m1.Validate(); err != nil {
		return nil, fmt.Errorf("NewMultiplexHet: first argument: %w", err)
	}
	if err := m2.Validate(); err != nil {
		return nil, fmt.Errorf("NewMultiplexHet: second argument: %w", err)
	}

	// Stage 2: relation table shape.
	if len(rels) == 0 {
		return nil, fmt.Errorf("NewMultiplexHet: %w", ErrEmptyRelations)
	}
	for i, r := range rels {
		if r.From == "" || r.To == "" {
			return nil, fmt.Errorf("NewMultiplexHet: row %d: %w", i, ErrBadRelation)
		}
	}

	// Stage 3: weight policy.
	weights, err := NormalizeWeights(rels)
	if err != nil {
		return nil, fmt.Errorf("NewMultiplexHet: %w", err)
	}

	// Stage 4: pool-indexed bipartite matrix (fail-fast on unknown nodes).
	bip, err := buildBipartite(m1, m2, rels, weights)
	if err != nil {
		return nil, fmt.Errorf("NewMultiplexHet: %w", err)
	}

	// Stage 5: replicate once per (layer-of-1, layer-of-2) pair. The
	// bipartite relation is layer-independent, so every block is a verbatim
	// copy and nnz scales by exactly L1·L2.
	supra, err := matrix.ReplicateBlocks(bip, m1.LayerCount(), m2.LayerCount())
	if err != nil {
		return nil, fmt.Errorf("NewMultiplexHet: expand: %w", err)
	}

	return &MultiplexHet{first: m1, second: m2, bip: bip, supra: supra}, nil
}
