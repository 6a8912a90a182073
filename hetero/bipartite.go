// File: bipartite.go
// Role: Bipartite matrix construction — mapping named relations onto the
//       two pool index spaces.
// Determinism:
//   - Row/column indices come from each multiplex's sorted pool; duplicate
//     relations overwrite in table order (last write wins).

package hetero

import (
	"fmt"

	"github.com/katalvlaran/multinet/matrix"
	"github.com/katalvlaran/multinet/multiplex"
)

// buildBipartite maps the relation table onto an N1×N2 sparse matrix.
//
// Membership of every relation endpoint is verified against both pools
// before the matrix is allocated (fail-fast: no partial matrix exists when
// ErrUnknownNode is reported). Row index = pool-1 position of From; column
// index = pool-2 position of To; entry = the normalized weight. A duplicate
// (From, To) pair overwrites the earlier entry rather than accumulating.
// Complexity: O(R).
func buildBipartite(m1, m2 *multiplex.Multiplex, rels []Relation, weights []float64) (*matrix.Sparse, error) {
	// Referential validation pass, before any matrix construction begins.
	for i, r := range rels {
		if _, ok := m1.IndexOf(r.From); !ok {
			return nil, fmt.Errorf("buildBipartite: row %d: node %q (first network): %w", i, r.From, ErrUnknownNode)
		}
		if _, ok := m2.IndexOf(r.To); !ok {
			return nil, fmt.Errorf("buildBipartite: row %d: node %q (second network): %w", i, r.To, ErrUnknownNode)
		}
	}

	bip, err := matrix.NewSparse(m1.NodeCount(), m2.NodeCount())
	if err != nil {
		return nil, fmt.Errorf("buildBipartite: %w", err)
	}
	for i, r := range rels {
		row, _ := m1.IndexOf(r.From)
		col, _ := m2.IndexOf(r.To)
		if err = bip.Set(row, col, weights[i]); err != nil {
			return nil, fmt.Errorf("buildBipartite: row %d: %w", i, err)
		}
	}

	return bip, nil
}
