// Package core defines the layer-graph primitive shared by every multinet
// network: named vertices, tagged weighted edges, and thread-safe mutation
// with deterministic enumeration.
//
// What:
//
//   - Graph holds vertices (string IDs) and float64-weighted edges, directed
//     or undirected per construction flag, with optional self-loops and
//     parallel edges for raw caller input.
//   - Every Edge carries a Layer tag so edges remain identifiable after
//     layers are merged into larger structures.
//   - Simplify produces a loop-free, deduplicated copy — the canonical form
//     a multiplex layer must be in before alignment.
//
// Why:
//
//   - Multiplex assembly needs independently-authored graphs brought into a
//     mutually consistent shape; the capability flags make the target shape
//     (no loops, no multi-edges) enforceable by construction.
//   - Downstream matrices index rows and columns by sorted vertex ID, so
//     Vertices() guarantees lexicographic order.
//
// Concurrency:
//
//   - Two RWMutexes (muVert for the vertex catalog, muEdgeAdj for edges and
//     adjacency) allow concurrent reads with minimal contention. Lock order
//     is always muVert → muEdgeAdj.
//
// Errors:
//
//	ErrNilGraph            - nil *Graph passed where a graph is required.
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - non-zero weight on an unweighted graph.
//	ErrNonFiniteWeight     - NaN or ±Inf weight at ingestion.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core
