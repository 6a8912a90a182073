// File: methods_clone.go
// Role: Cloning and canonicalization (Simplify) of graph instances.
// Determinism:
//   - Clone/CloneEmpty carry over nextEdgeID to keep textual edge IDs
//     monotonic on the clone.
//   - Simplify visits edges in insertion order, so the surviving edge of a
//     duplicate group is always the first inserted (first-edge-wins).
// Concurrency:
//   - Read locks for snapshotting; the source graph is never mutated.

package core

import "sync/atomic"

// CloneEmpty returns a new Graph with identical configuration and vertices,
// but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph(g.configOptions()...)
	// Preserve the textual edge ID sequence to avoid collisions on future AddEdge.
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	for id := range g.vertices {
		clone.vertices[id] = &Vertex{ID: id}
		clone.adjacency[id] = make(map[string]map[string]struct{})
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges,
// adjacency, and layer tags.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for eid, e := range g.edges {
		ne := &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight, Directed: e.Directed, Layer: e.Layer}
		clone.edges[eid] = ne
		ensureAdjacency(clone, e.From, e.To)
		clone.adjacency[e.From][e.To][eid] = struct{}{}
		if !e.Directed && e.From != e.To {
			ensureAdjacency(clone, e.To, e.From)
			clone.adjacency[e.To][e.From][eid] = struct{}{}
		}
	}

	return clone
}

// Simplify returns a copy of the Graph with self-loops removed and parallel
// edges collapsed to a single edge.
//
// Policy is structural only: the surviving edge of a duplicate group is the
// first in insertion order and keeps its weight unchanged (no aggregation).
// The result permits neither loops nor multi-edges, so later mutation cannot
// reintroduce them. The receiver is not mutated.
// Complexity: O(V + E log E).
func (g *Graph) Simplify() *Graph {
	opts := []GraphOption{WithDirected(g.Directed())}
	if g.Weighted() {
		opts = append(opts, WithWeighted())
	}
	simple := NewGraph(opts...)

	// Carry all vertices, including isolated ones.
	for _, id := range g.Vertices() {
		_ = simple.AddVertex(id)
	}

	// Re-insert edges in insertion order; duplicates and loops are skipped.
	// HasEdge covers the mirrored direction on undirected graphs, so (v,u)
	// counts as a duplicate of (u,v) there.
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		if simple.HasEdge(e.From, e.To) {
			continue
		}
		if _, err := simple.AddEdge(e.From, e.To, e.Weight); err != nil {
			// Unreachable: endpoints exist, weight was already accepted once.
			continue
		}
	}

	return simple
}

// configOptions reconstructs the GraphOption list describing g's flags.
// Caller must hold at least a read lock on muVert.
func (g *Graph) configOptions() []GraphOption {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}

	return opts
}
