// SPDX-License-Identifier: MIT
// File: dense.go
// Role: Export bridge to gonum for downstream numeric consumers.

package matrix

import "gonum.org/v1/gonum/mat"

// Dense materializes the matrix as a gonum mat.Dense.
//
// Intended for handoff to numeric engines (e.g. a random-walk propagation
// step) and for exact-equality verification in tests. Materialization is
// O(rows·cols) memory — call it on bipartite-scale matrices, not on supra
// matrices with large layer counts.
func (m *Sparse) Dense() *mat.Dense {
	d := mat.NewDense(m.rows, m.cols, nil)
	for k, v := range m.cells {
		d.Set(k.r, k.c, v)
	}

	return d
}
