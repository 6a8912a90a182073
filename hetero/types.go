// File: types.go
// Role: Relation input record and the immutable MultiplexHet result type.

package hetero

import (
	"github.com/katalvlaran/multinet/matrix"
	"github.com/katalvlaran/multinet/multiplex"
)

// Relation is one row of the cross-network relation table: a node of the
// first multiplex, a node of the second, and an optional raw weight.
//
// A table whose Weight column was never set (all zero) is treated as
// unweighted and every relation receives weight 1 during normalization.
// The table is validated against both pools and not retained after the
// matrices are built.
type Relation struct {
	// From is a node ID in the first multiplex's pool.
	From string

	// To is a node ID in the second multiplex's pool.
	To string

	// Weight is the raw relation weight; zero throughout the table means
	// "no weight column".
	Weight float64
}

// MultiplexHet is the multiplex-heterogeneous network: two multiplexes
// joined by a bipartite relation, with the supra-bipartite expansion
// required for propagation across every (layer-of-1, layer-of-2) pair.
//
// Immutable once built. It owns no mutable state shared with its inputs;
// the multiplexes may be reused by the caller afterward.
type MultiplexHet struct {
	first  *multiplex.Multiplex
	second *multiplex.Multiplex
	bip    *matrix.Sparse // N1×N2, pool-indexed
	supra  *matrix.Sparse // (N1·L1)×(N2·L2), block-replicated
}

// First returns the first multiplex.
func (h *MultiplexHet) First() *multiplex.Multiplex { return h.first }

// Second returns the second multiplex.
func (h *MultiplexHet) Second() *multiplex.Multiplex { return h.second }

// Bipartite returns the N1×N2 pool-indexed relation matrix. Entry (i, j) is
// the normalized weight of the relation between pool-1 node i and pool-2
// node j, 0 if absent. The matrix represents a directed cross-network
// relation from network 1's pool to network 2's pool; symmetry is not
// assumed. Callers must treat it as read-only.
func (h *MultiplexHet) Bipartite() *matrix.Sparse { return h.bip }

// Supra returns the (N1·L1)×(N2·L2) supra-bipartite matrix: block (b1, b2)
// is a verbatim copy of Bipartite(), one per layer pair. Callers must treat
// it as read-only.
func (h *MultiplexHet) Supra() *matrix.Sparse { return h.supra }
