package cfg

import "github.com/redex-go/flowcore/ir"

// Cursor identifies a position within an InstructionIterator's traversal:
// an index into the iterator's block order, and an entry index within that
// block. Two cursors are equal, via Equals, iff both components match.
type Cursor struct {
	blockCursor      int
	intraBlockCursor int
}

// EndCursor is the sentinel Next returns once the traversal is exhausted.
// It compares equal only to itself: any in-progress cursor has a
// non-negative intraBlockCursor, so EndCursor's -1 never matches one.
var EndCursor = Cursor{blockCursor: -1, intraBlockCursor: -1}

// Equals reports whether c and other identify the same position.
func (c Cursor) Equals(other Cursor) bool {
	return c.blockCursor == other.blockCursor && c.intraBlockCursor == other.intraBlockCursor
}

// InstructionIterator walks every ir.KindInstruction entry of every block
// of a Graph, in block order then entry order within each block — the same
// order Linearize would emit them in before any marker re-synthesis.
// Non-instruction entries (Target, Debug, Position, TryStart/TryEnd, Catch)
// are skipped; this iterator only ever yields instructions. It is
// forward-only and single-pass: stable across non-mutating CFG operations,
// invalidated by any structural mutation (block insertion/removal, edge
// rewrite, linearize).
type InstructionIterator struct {
	g       *Graph
	layout  []BlockID
	blockIx int
	itemIx  int
}

// Instructions returns a fresh iterator positioned before the first entry
// of g's first block.
func Instructions(g *Graph) *InstructionIterator {
	return &InstructionIterator{g: g, layout: g.BlockIDs()}
}

// Next advances the iterator to the next Instruction-kind entry and returns
// it, its owning block, the cursor it was found at, and whether one was
// available. Once exhausted, it keeps returning (nil, 0, EndCursor, false).
func (it *InstructionIterator) Next() (*ir.Item, BlockID, Cursor, bool) {
	for it.blockIx < len(it.layout) {
		id := it.layout[it.blockIx]
		b := it.g.blocks[id]
		for it.itemIx < len(b.Entries) {
			item := b.Entries[it.itemIx]
			cursor := Cursor{blockCursor: it.blockIx, intraBlockCursor: it.itemIx}
			it.itemIx++
			if item.Kind != ir.KindInstruction {
				continue
			}
			return item, id, cursor, true
		}
		it.blockIx++
		it.itemIx = 0
	}
	return nil, 0, EndCursor, false
}
