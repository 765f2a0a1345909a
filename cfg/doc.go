// Package cfg builds and manipulates a control flow graph (CFG) over a
// method's linear instruction stream (package ir), and exposes the
// dominator, linearization and instruction-iteration utilities a monotonic
// fixpoint dataflow iterator needs.
//
// # Building
//
//	g := cfg.Build(items)
//	for _, id := range g.BlockIDs() {
//	    b, _ := g.Block(id)
//	    ...
//	}
//
// Build owns the entries it is given: ownership of the []*ir.Item slice
// transfers into the returned Graph, and the caller must not read it
// afterwards (see the package-level resource-model note on Graph).
//
// # Consumers
//
// A fixpoint iterator (an external collaborator, not part of this package)
// only ever needs Entry, Exit, Predecessors, Successors, Source and Target —
// the same minimal graph interface exposed here. Dominators, the
// instruction iterator and the DOT printer are read-only views built on top
// of that same interface.
//
// # Failure semantics
//
// Build panics with a StructuralError on malformed input (dangling branch
// target, unterminated switch, malformed try region): the instruction
// stream is trusted input from an upstream decoder, and a malformed stream
// is a programmer error in that decoder, not a condition this package
// recovers from. Likewise, passing Successors, Predecessors, Source or
// Target an id the Graph does not own panics with a ContractError. Use of a
// Graph after Linearize is not checked.
package cfg
