// Package hetero joins two multiplex networks into one multiplex-
// heterogeneous network via a bipartite cross-network relation table.
//
// What:
//
//   - Relation rows name one node in each multiplex and an optional weight.
//   - NewMultiplexHet validates both multiplexes and the table, normalizes
//     weights, builds the N1×N2 bipartite matrix indexed by the two pools,
//     and expands it into the (N1·L1)×(N2·L2) supra-bipartite block matrix
//     required for propagation across all layer pairs.
//
// Weight normalization policy (reproduced exactly; numerical parity with
// the reference pipeline matters):
//
//   - No weights supplied (all zero) or all weights equal → every relation
//     gets weight 1; a non-varying column carries no discriminative
//     information.
//   - Varying weights → linear rescale onto [min/max, 1]:
//     w' = (1−a)·(w−min)/(max−min) + a, with a = min/max. The maximum maps
//     to 1 and the minimum to min/max, never to 0 — a weaker relation keeps
//     reduced influence instead of vanishing.
//
// Failure model:
//
//   - All validation is eager: structural errors (nil or malformed
//     multiplex, empty table, blank node names) and referential errors
//     (a relation naming a node absent from its pool) are reported before
//     any matrix is built. No partial object is ever returned.
//
// Errors:
//
//	ErrNilMultiplex   - a multiplex argument is nil.
//	ErrEmptyRelations - the relation table has no rows.
//	ErrBadRelation    - a relation row has a blank node name.
//	ErrBadWeight      - a relation weight is NaN or ±Inf.
//	ErrUnknownNode    - a relation references a node outside its pool.
package hetero
