// Package lattice implements the generic three-state abstract-value lattice
// used by dataflow analyses built on top of the cfg package.
//
// # Scaffold
//
// An Element[C] is always in one of three states:
//
//	Bottom ⊑ Value(c) ⊑ Top   for every c
//
// Bottom and Top are constructed with Bottom[C]() and Top[C](); a concrete
// value with Of(c). Join, Meet, Widen and Narrow are pure: they return a new
// Element rather than mutating the receiver.
//
// # Constant domain
//
// Domain[C] wraps the scaffold for a comparable carrier C and adds the
// textual rendering analyses use for debug output: "_|_" for Bottom, "T" for
// Top, and the carrier's own fmt.Sprint form for Value.
//
// Chains in this lattice have depth at most 3 (Bottom → Value → Top), so
// Widen and Narrow degenerate to Join and Meet respectively; no acceleration
// is needed to guarantee fixpoint convergence.
package lattice
