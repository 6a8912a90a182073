// SPDX-License-Identifier: MIT
// File: types.go
// Role: Layer input record, the immutable Multiplex result type, read-only
//       accessors, and well-formedness validation.
// Determinism:
//   - Pool() and LayerNames() return copies in the canonical stored order.

package multiplex

import (
	"fmt"

	"github.com/katalvlaran/multinet/core"
)

// Layer is one input layer of a multiplex network: a name and a graph.
//
// An empty Name defaults to "Layer_<k>" (k is the 1-based position) during
// assembly. The ordered slice of Layer values stands in for the ordered
// name→graph mapping of the construction contract.
type Layer struct {
	// Name identifies the layer inside the multiplex.
	Name string

	// Graph is the raw layer graph. It is treated as an immutable snapshot
	// for the duration of a build and never mutated.
	Graph *core.Graph
}

// Multiplex is a set of aligned layers over one shared node pool.
//
// Immutable once built: every layer's vertex set equals the pool exactly,
// every edge carries its layer's name, and the pool is the sorted union of
// all input vertex IDs. The pool ordering is the canonical index space for
// every matrix derived from this multiplex.
type Multiplex struct {
	names  []string               // layer names in supply order
	layers map[string]*core.Graph // layer name → aligned graph
	pool   []string               // sorted distinct node IDs
	index  map[string]int         // node ID → pool position
}

// LayerCount returns the number of layers.
// Complexity: O(1).
func (m *Multiplex) LayerCount() int { return len(m.names) }

// NodeCount returns the size of the node pool.
// Complexity: O(1).
func (m *Multiplex) NodeCount() int { return len(m.pool) }

// Pool returns a copy of the sorted node pool.
// Complexity: O(N).
func (m *Multiplex) Pool() []string {
	out := make([]string, len(m.pool))
	copy(out, m.pool)

	return out
}

// IndexOf returns the pool position of a node ID. The boolean is false when
// the node is not part of this multiplex.
// Complexity: O(1).
func (m *Multiplex) IndexOf(id string) (int, bool) {
	i, ok := m.index[id]

	return i, ok
}

// LayerNames returns a copy of the layer names in supply order.
// Complexity: O(L).
func (m *Multiplex) LayerNames() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)

	return out
}

// LayerByName returns the aligned graph of the named layer.
// The boolean reports presence.
// Complexity: O(1).
func (m *Multiplex) LayerByName(name string) (*core.Graph, bool) {
	g, ok := m.layers[name]

	return g, ok
}

// LayerAt returns the name and aligned graph of the layer at position i
// (supply order, 0-based). The boolean is false when i is out of range.
// Complexity: O(1).
func (m *Multiplex) LayerAt(i int) (string, *core.Graph, bool) {
	if i < 0 || i >= len(m.names) {
		return "", nil, false
	}
	name := m.names[i]

	return name, m.layers[name], true
}

// Validate checks structural well-formedness: at least one layer, no nil
// layer graph, and every layer's vertex set identical to the pool (size and
// identity). A multiplex built by NewMultiplex always passes; the check
// guards hand-assembled or stale inputs at package boundaries.
// Complexity: O(L·N).
func (m *Multiplex) Validate() error {
	if m == nil {
		return ErrNilMultiplex
	}
	if len(m.names) == 0 {
		return ErrNoLayers
	}
	for _, name := range m.names {
		g := m.layers[name]
		if g == nil {
			return fmt.Errorf("Validate: layer %q: %w", name, ErrNilLayer)
		}
		if g.VertexCount() != len(m.pool) {
			return fmt.Errorf("Validate: layer %q has %d vertices, pool has %d: %w",
				name, g.VertexCount(), len(m.pool), ErrPoolMismatch)
		}
		for _, id := range m.pool {
			if !g.HasVertex(id) {
				return fmt.Errorf("Validate: layer %q is missing pool node %q: %w",
					name, id, ErrPoolMismatch)
			}
		}
	}

	return nil
}
