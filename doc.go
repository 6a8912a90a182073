// Package multinet builds the aligned multiplex and multiplex-heterogeneous
// network structures consumed by random-walk-with-restart propagation over
// biological networks.
//
// 🚀 What is multinet?
//
//	A deterministic construction pipeline that takes independently-authored
//	graphs sharing a conceptual node space and produces:
//		• Multiplex — multiple layers aligned over one sorted node pool,
//		  every layer padded to the exact same vertex set, every edge tagged
//		  with its layer of origin
//		• MultiplexHet — two multiplexes joined by a bipartite relation,
//		  expanded into the supra-bipartite block matrix the propagation
//		  step needs to cross between layers and node spaces
//
// ✨ Why multinet?
//
//   - Index alignment is explicit — every matrix row/column is defined by a
//     sorted node pool, never by incidental graph ordering; misalignment
//     fails loudly instead of corrupting results silently
//   - Deterministic by construction — identical inputs give byte-identical
//     pools, tags, and matrices, regardless of layer order or scheduling
//   - Sparse end to end — supra matrices are tiled from sparse blocks;
//     nothing is densified on the construction path
//
// Everything is organized under four subpackages:
//
//	core/      — layer graph primitive: vertices, tagged weighted edges,
//	             simplification, thread-safe mutation
//	matrix/    — deterministic sparse matrix, block placement/replication,
//	             gonum dense export
//	multiplex/ — pool aggregation, layer alignment, multiplex assembly
//	hetero/    — weight normalization, bipartite mapping, supra expansion,
//	             heterogeneous assembly
//
// Quick ASCII example:
//
//	 layer PPI        layer CoEx        pool = {1,2,3,4}
//	   1───2            1───3           both layers padded to 4 nodes,
//	   │                │               edges tagged "PPI" / "CoEx"
//	   3                2   4
//
// The iterative random-walk itself (transition normalization, restart
// mixing, convergence) lives downstream; multinet hands it well-formed,
// read-only structures and does not compute any propagation score.
package multinet
