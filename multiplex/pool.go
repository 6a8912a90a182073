// SPDX-License-Identifier: MIT
// File: pool.go
// Role: Pool aggregation — the sorted distinct union of vertex IDs across
//       layers.
// Determinism:
//   - Output is lexicographically sorted and unique, so two aggregations
//     over the same layer set are byte-identical regardless of layer order.
//     Pool order is the implicit row/column index of all downstream
//     matrices, which makes this property load-bearing.

package multiplex

import (
	"sort"

	"github.com/katalvlaran/multinet/core"
)

// aggregatePool returns the sorted union of vertex IDs over the given graphs.
// Complexity: O(Σ V_i log Σ V_i).
func aggregatePool(graphs []*core.Graph) []string {
	seen := make(map[string]struct{})
	for _, g := range graphs {
		for _, id := range g.Vertices() {
			seen[id] = struct{}{}
		}
	}

	pool := make([]string, 0, len(seen))
	for id := range seen {
		pool = append(pool, id)
	}
	sort.Strings(pool)

	return pool
}

// indexPool builds the node ID → pool position lookup table.
// Complexity: O(N).
func indexPool(pool []string) map[string]int {
	index := make(map[string]int, len(pool))
	for i, id := range pool {
		index[id] = i
	}

	return index
}
