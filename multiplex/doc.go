// SPDX-License-Identifier: MIT

// Package multiplex assembles independently-authored layer graphs into one
// aligned multiplex network.
//
// What:
//
//   - NewMultiplex takes an ordered list of named layers and produces a
//     Multiplex whose every layer shares the exact same vertex set: the
//     pool, the lexicographically sorted union of all layer vertex IDs.
//   - Per layer, assembly simplifies (drops self-loops, collapses parallel
//     edges), pads with isolated pool vertices, and tags every edge with the
//     layer's name. Input graphs are never mutated.
//   - The pool ordering is the canonical row/column index space for every
//     matrix built from the multiplex; IndexOf exposes the name→index table.
//   - SupraAdjacency emits the (N·L)×(N·L) block-diagonal adjacency over all
//     layers, the structure a propagation engine consumes next.
//
// Why:
//
//   - Layer graphs arrive from different sources with different vertex sets;
//     matrix operations over layers silently misalign unless every layer is
//     padded to one shared, deterministically ordered pool.
//
// Concurrency:
//
//   - The per-layer simplification step fans out over an errgroup with a
//     bounded worker count (WithWorkers) and joins before the pool-dependent
//     padding stage. Results are keyed back by layer position, never by
//     completion order, so output is identical across runs.
//
// Determinism:
//
//   - Two builds from the same inputs yield byte-identical pools and layer
//     vertex sets regardless of layer supply order or scheduling.
//
// Errors:
//
//	ErrNoLayers           - empty layer list.
//	ErrNilLayer           - a layer carries a nil graph.
//	ErrDuplicateLayerName - two layers resolve to the same name.
//	ErrNilMultiplex       - nil *Multiplex where one is required.
//	ErrPoolMismatch       - a layer's vertex set differs from the pool.
package multiplex
