// SPDX-License-Identifier: MIT
// File: fromedges.go
// Role: Edge-list ingestion — builds raw layers with canonical positional
//       node identifiers, for callers whose input has no node names at all.

package multiplex

import (
	"strconv"

	"github.com/katalvlaran/multinet/core"
)

// FromEdgeLists converts integer edge lists into unnamed raw layers.
//
// Node k is assigned the canonical identifier strconv.Itoa(k), so inputs
// indexed 1..N arrive with the positional names the alignment contract
// expects; every later lookup-by-name is guaranteed to succeed. The
// resulting graphs are undirected and permissive (loops and parallel edges
// allowed) — exactly the raw shape NewMultiplex simplifies away.
//
// Layer names are left empty and default to "Layer_<k>" during assembly.
// Complexity: O(Σ E_i).
func FromEdgeLists(lists ...[][2]int) []Layer {
	layers := make([]Layer, len(lists))
	for k, edges := range lists {
		g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
		for _, e := range edges {
			// Raw ingestion cannot fail: IDs are non-empty decimals and the
			// graph accepts loops and duplicates.
			_, _ = g.AddEdge(strconv.Itoa(e[0]), strconv.Itoa(e[1]), 0)
		}
		layers[k] = Layer{Graph: g}
	}

	return layers
}
