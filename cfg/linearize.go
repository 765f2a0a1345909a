package cfg

import "github.com/redex-go/flowcore/ir"

// Linearize serializes g back into a flat instruction stream suitable for
// re-feeding to Build. It proceeds in five steps:
//
//  1. reintroduce branches — for every block whose implicit fallthrough
//     successor will no longer be adjacent under the chosen layout, append
//     an explicit goto;
//  2. choose block order — lay blocks out in ascending block id order,
//     which is exactly the order Build originally discovered them in, so
//     every edge that was a fallthrough at build time is a fallthrough
//     again here;
//  3. reinsert region markers — re-synthesize the TryStart/TryEnd entries
//     Build stripped, bracketing each region's first and last member block;
//  4. remove redundant branches — drop any explicit goto whose target is
//     already the next block in the chosen layout;
//  5. emit targets — prepend a Target entry to every block that is the
//     destination of some surviving edge other than the fallthrough from
//     its immediate predecessor in the layout.
//
// Rebuilding the result with Build reproduces g's edge set exactly (the
// round-trip property Build's tests rely on); it need not reproduce the
// exact byte sequence g was originally built from, since blocks whose
// branch was elided as redundant fallthrough in step 4 come back out of
// Build as an implicit rather than an explicit goto.
func Linearize(g *Graph) []*ir.Item {
	layout := append([]BlockID(nil), g.order...)

	reintroduceBranches(g, layout)
	regionSpan := reinsertRegionMarkers(g, layout)
	removeRedundantBranches(g, layout)
	targets := blocksNeedingTargets(g, layout)

	var out []*ir.Item
	for _, id := range layout {
		b := g.blocks[id]
		if targets[id] {
			out = append(out, ir.NewTarget(g.labelFor(id)))
		}
		for _, r := range regionSpan.opens[id] {
			out = append(out, ir.NewTryStart(r))
		}
		out = append(out, b.Entries...)
		for _, r := range regionSpan.closes[id] {
			out = append(out, ir.NewTryEnd(r))
		}
	}
	return out
}

// labelFor returns the label previously assigned to block id (from its
// original Target entry), minting a fresh one on first use otherwise.
func (g *Graph) labelFor(id BlockID) *ir.Label {
	if l, ok := g.blockLabel[id]; ok {
		return l
	}
	l := ir.NewLabel("")
	g.blockLabel[id] = l
	return l
}

// reintroduceBranches appends an explicit goto to every block whose
// default successor is not the block immediately following it in layout.
func reintroduceBranches(g *Graph, layout []BlockID) {
	for i, id := range layout {
		b := g.blocks[id]
		succ, ok := b.DefaultSuccessor()
		if !ok {
			continue
		}
		nextIsDefault := i+1 < len(layout) && layout[i+1] == succ
		if nextIsDefault {
			continue
		}
		if _, ok := b.LastTerminator(); ok {
			// The default successor is one arm of an if/switch already
			// emitted explicitly; only a bare fallthrough needs a new
			// terminator here.
			continue
		}
		b.Entries = append(b.Entries, ir.NewGoto("goto", g.labelFor(succ)))
	}
}

type regionSpans struct {
	opens  map[BlockID][]*ir.TryRegion
	closes map[BlockID][]*ir.TryRegion
}

// reinsertRegionMarkers computes, for every region, which block should
// carry its TryStart (the first member block in layout order) and which
// should carry its TryEnd (the last), so the caller can splice them back
// in while walking the layout once.
func reinsertRegionMarkers(g *Graph, layout []BlockID) regionSpans {
	pos := make(map[BlockID]int, len(layout))
	for i, id := range layout {
		pos[id] = i
	}

	spans := regionSpans{opens: map[BlockID][]*ir.TryRegion{}, closes: map[BlockID][]*ir.TryRegion{}}
	for r, blocks := range g.regionBlocks {
		if len(blocks) == 0 {
			continue
		}
		first, last := blocks[0], blocks[0]
		for _, id := range blocks[1:] {
			if pos[id] < pos[first] {
				first = id
			}
			if pos[id] > pos[last] {
				last = id
			}
		}
		spans.opens[first] = append(spans.opens[first], r)
		spans.closes[last] = append(spans.closes[last], r)
	}
	return spans
}

// removeRedundantBranches drops a block's trailing goto when its target is
// already the next block in layout — the fallthrough reaches it for free.
func removeRedundantBranches(g *Graph, layout []BlockID) {
	for i, id := range layout {
		if i+1 >= len(layout) {
			continue
		}
		b := g.blocks[id]
		if len(b.Entries) == 0 {
			continue
		}
		last := b.Entries[len(b.Entries)-1]
		if last.Kind != ir.KindInstruction || last.Insn.Kind != ir.InsnGoto {
			continue
		}
		if g.blockLabel[layout[i+1]] == last.Insn.Target {
			b.Entries = b.Entries[:len(b.Entries)-1]
		}
	}
}

// blocksNeedingTargets returns the set of blocks that must carry a Target
// entry: every block reached by a BRANCH or THROW edge, and every block
// reached by a GOTO edge whose source is not its immediate predecessor in
// layout.
func blocksNeedingTargets(g *Graph, layout []BlockID) map[BlockID]bool {
	needed := map[BlockID]bool{}
	for i, id := range layout {
		for _, eid := range g.blocks[id].succs {
			e := g.edges[eid]
			switch e.kind {
			case EdgeBranch, EdgeThrow:
				needed[e.dst] = true
			case EdgeGoto:
				isFallthrough := i+1 < len(layout) && layout[i+1] == e.dst
				if !isFallthrough {
					needed[e.dst] = true
				}
			}
		}
	}
	return needed
}
