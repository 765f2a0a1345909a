package cfg

import "github.com/redex-go/flowcore/ir"

// BlockID names a basic block within a Graph. Block ids are assigned in
// stream order at construction time (block 0 is always the entry block)
// and remain stable across linearization and pruning.
type BlockID int

// BasicBlock is a maximal run of instruction-stream entries with a single
// entry point and a single exit point: control only ever enters at the
// first entry and only ever leaves after the last.
//
// Markers that exist purely to delimit control flow (KindTarget,
// KindTryStart, KindTryEnd) are stripped from Entries once the block has
// been carved out of the stream; their information now lives structurally,
// as edges and as Region. KindCatch, KindDebug and KindPosition entries
// pass through unchanged.
type BasicBlock struct {
	id BlockID

	// Entries are this block's owned instruction-stream entries, in
	// execution order, after marker-stripping.
	Entries []*ir.Item

	succs []EdgeID
	preds []EdgeID

	// defaultSucc is the successor a linearizer may reach by falling off
	// the end of this block without emitting an explicit branch: the
	// fallthrough target of an unterminated block, the not-taken arm of an
	// InsnIf, the default arm of an InsnSwitch, or the target of an
	// InsnGoto built with ir.NewImplicitGoto. -1 means none.
	defaultSucc BlockID

	// Region is the innermost try region still open after this block's
	// entries have been scanned, or nil if none. It is informational: the authoritative
	// exception-flow data is the EdgeThrow edges leaving this block.
	Region *ir.TryRegion
}

// ID returns b's identity within its owning Graph.
func (b *BasicBlock) ID() BlockID { return b.id }

// Successors returns the ids of edges leaving b, in the order they were
// added (GOTO/BRANCH edges before EdgeThrow edges, matching the builder's
// phase order).
func (b *BasicBlock) Successors() []EdgeID { return b.succs }

// Predecessors returns the ids of edges entering b.
func (b *BasicBlock) Predecessors() []EdgeID { return b.preds }

// DefaultSuccessor returns the block a linearizer may reach implicitly by
// falling through, and true iff one exists.
func (b *BasicBlock) DefaultSuccessor() (BlockID, bool) {
	if b.defaultSucc < 0 {
		return 0, false
	}
	return b.defaultSucc, true
}

// LastTerminator returns the terminating instruction entry of b, if its
// last entry is one. A block with no terminator falls through to its
// default successor (if any) or is an implicit exit.
func (b *BasicBlock) LastTerminator() (*ir.Instruction, bool) {
	if len(b.Entries) == 0 {
		return nil, false
	}
	last := b.Entries[len(b.Entries)-1]
	if !last.IsTerminator() {
		return nil, false
	}
	return last.Insn, true
}
