// File: methods_adjacent.go
// Role: Adjacency queries: Neighbors and GetEdge.
// Determinism:
//   - Neighbors() returns IDs sorted lexicographically ascending.
// Concurrency:
//   - Read locks only; no mutation.

package core

import "sort"

// Neighbors returns the sorted IDs of vertices reachable from id by at
// least one edge. On undirected graphs mirrored adjacency makes the
// relation symmetric. Returns ErrVertexNotFound for an unknown vertex.
// Complexity: O(deg log deg).
func (g *Graph) Neighbors(id string) ([]string, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]string, 0, len(g.adjacency[id]))
	for to, bucket := range g.adjacency[id] {
		if len(bucket) > 0 {
			out = append(out, to)
		}
	}
	sort.Strings(out)

	return out, nil
}

// GetEdge returns the edge with the given ID, or ErrEdgeNotFound.
// The returned pointer references the live record; callers must not mutate.
// Complexity: O(1).
func (g *Graph) GetEdge(eid string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}
