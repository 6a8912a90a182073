// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount/TagLayer,
//       plus the nextEdgeID generator and adjacency helpers.
// Determinism:
//   - Edges() returns edges sorted by insertion order (numeric suffix of
//     Edge.ID asc). Simplify's first-edge-wins policy depends on this.
// Concurrency:
//   - Mutations under muEdgeAdj write lock; queries under read lock.

package core

import (
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = "e"

// AddEdge creates a new edge from→to with the given weight.
//
// Missing endpoints are inserted automatically. On undirected graphs the
// adjacency entry is mirrored so HasEdge works both ways.
//
// Errors:
//   - ErrEmptyVertexID if either endpoint ID is empty.
//   - ErrBadWeight if weight != 0 on an unweighted graph.
//   - ErrNonFiniteWeight if weight is NaN or ±Inf.
//   - ErrLoopNotAllowed if from == to and loops are disabled.
//   - ErrMultiEdgeNotAllowed if (from,to) already has an edge and multi-edges
//     are disabled.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	// Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", ErrNonFiniteWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	// Ensure endpoints exist
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// Insert edge under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti {
		if inner := g.adjacency[from][to]; len(inner) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	eid := g.newEdgeID()
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}

	g.edges[eid] = e
	ensureAdjacency(g, from, to)
	g.adjacency[from][to][eid] = struct{}{}

	// Mirror undirected
	if !e.Directed && from != to {
		ensureAdjacency(g, to, from)
		g.adjacency[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// HasEdge reports whether at least one edge from→to exists.
// Undirected edges are mirrored in adjacency, so HasEdge works both ways.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// Edges returns a snapshot of all edges sorted by insertion order.
// The returned pointers reference live Edge records; callers must not mutate.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return edgeOrdinal(out[i].ID) < edgeOrdinal(out[j].ID)
	})

	return out
}

// EdgeCount returns the number of stored edges (undirected edges count once).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// TagLayer stamps every edge's Layer attribute with the given name.
// Multiplex assembly calls this once per aligned layer so edges remain
// identifiable inside a unified edge set.
// Complexity: O(E).
func (g *Graph) TagLayer(name string) {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	for _, e := range g.edges {
		e.Layer = name
	}
}

// newEdgeID generates the next textual edge ID ("e1", "e2", ...).
// Monotonic and stable for a given graph instance.
func (g *Graph) newEdgeID() string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)

	return edgeIDPrefix + strconv.FormatUint(n, 10)
}

// edgeOrdinal extracts the numeric suffix of a textual edge ID for sorting.
// Malformed IDs sort first; they cannot be produced by newEdgeID.
func edgeOrdinal(id string) uint64 {
	if len(id) <= len(edgeIDPrefix) {
		return 0
	}
	n, err := strconv.ParseUint(id[len(edgeIDPrefix):], 10, 64)
	if err != nil {
		return 0
	}

	return n
}

// ensureAdjacency bootstraps nested adjacency buckets for (from, to).
// Caller must hold muEdgeAdj.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]map[string]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
}
