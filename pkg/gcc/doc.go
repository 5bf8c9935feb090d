// Package gcc implements the Global Cardinality Constraint (GCC) propagator
// family for finite-domain constraint programming.
//
// Given decision variables x[0..n) and cardinality specifications k[0..m)
// (each pairing a value with a required occurrence count range), the
// propagators in this package narrow variable domains so that every
// remaining assignment satisfies, for each cardinality entry, that the
// value occurs within its required count range.
//
// Three variants are provided:
//
//   - Val: value-consistent. Cheap; prunes values whose cardinality ceiling
//     has already been reached.
//   - Bnd: bounds-consistent. Detects Hall intervals over the sorted
//     variable bounds and tightens min/max accordingly.
//   - Dom: matching-based. Maintains an incremental bipartite b-matching
//     between variables and values and prunes edges that cross
//     strongly-connected-component boundaries. It prunes through the
//     matching only while every value is saturated; when some value has
//     free capacity it removes no edge, so it does not reach generalized
//     arc-consistency in that case.
//
// This package implements only the propagators' algorithmic core. The
// surrounding constraint-solving framework — backtracking search, space
// cloning, event-queue scheduling, memory arenas — is out of scope; view.go
// describes the contract (IntView, Space) and occurrence.go the Card type
// these propagators consume from and export to such a framework. A
// minimal, mutable reference implementation of that contract (Var, Arena)
// lives alongside the propagators for direct use and testing.
package gcc
