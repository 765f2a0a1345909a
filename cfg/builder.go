package cfg

import "github.com/redex-go/flowcore/ir"

// Build carves items into basic blocks and connects them into a Graph.
// Build owns items from this call on: the returned Graph's blocks hold the
// same *ir.Item pointers (in freshly allocated, marker-stripped slices), and
// the caller must not retain or mutate items afterwards.
//
// Build proceeds in four phases, mirroring how a human would annotate a
// disassembly listing by hand:
//
//  1. find block boundaries — scan items once to decide which stream
//     positions start a new block;
//  2. connect blocks — for each block, inspect its last entry and add the
//     GOTO/BRANCH edges (and default successor) that entry implies;
//  3. add catch edges — for each block lying inside an active try region,
//     add an EdgeThrow to every handler in that region's catch chain;
//  4. prune unreachable blocks — drop blocks (and their edges) that
//     phase 2/3 never connected from the entry block.
//
// Build panics with a *StructuralError if items is structurally malformed
// (a branch or switch arm targets a label with no matching KindTarget
// entry, a switch has no default arm, a conditional branch ends the last
// block, a KindTryEnd does not close the innermost open region, a region is
// never closed, or a region's catch chain names a handler with no KindCatch
// entry).
func Build(items []*ir.Item) *Graph {
	g := newGraph()
	if len(items) == 0 {
		return g
	}

	leaders := findLeaders(items)
	labelToBlock := make(map[*ir.Label]BlockID)
	activeAtBlock := make(map[BlockID][]*ir.TryRegion)

	var activeStack []*ir.TryRegion
	for bi, start := range leaders {
		end := len(items)
		if bi+1 < len(leaders) {
			end = leaders[bi+1]
		}
		raw := items[start:end]

		block := &BasicBlock{}
		id := g.addBlock(block)

		stripped := make([]*ir.Item, 0, len(raw))
		for _, it := range raw {
			switch it.Kind {
			case ir.KindTarget:
				labelToBlock[it.Label] = id
				g.blockLabel[id] = it.Label
				continue
			case ir.KindTryStart:
				activeStack = append(activeStack, it.Try)
				continue
			case ir.KindTryEnd:
				if len(activeStack) == 0 || activeStack[len(activeStack)-1] != it.Try {
					fail("try-end for a region that was not the innermost active region")
				}
				activeStack = activeStack[:len(activeStack)-1]
				continue
			case ir.KindCatch:
				g.handlerBlock[it.Catch] = id
			}
			stripped = append(stripped, it)
		}
		block.Entries = stripped

		// A region is "active for this block" if it was opened at or before
		// this block's end and not yet closed: using the post-scan stack
		// (rather than the pre-scan one) correctly covers a TryStart that
		// opens a region partway through the same block a throwing
		// instruction appears in. TryEnd always starts a fresh block (see
		// findLeaders), so a region can never also close within the block
		// that opens it — this snapshot is exact, not an approximation.
		activeAtBlock[id] = append([]*ir.TryRegion(nil), activeStack...)
		if len(activeAtBlock[id]) > 0 {
			block.Region = activeAtBlock[id][len(activeAtBlock[id])-1]
		}
		for _, r := range activeAtBlock[id] {
			g.regionBlocks[r] = append(g.regionBlocks[r], id)
		}
	}
	if len(activeStack) != 0 {
		fail("%d try region(s) opened but never closed", len(activeStack))
	}

	connectBlocks(g, labelToBlock)
	addCatchEdges(g, activeAtBlock)
	pruneUnreachable(g)
	synthesizeExit(g)

	return g
}

// findLeaders returns, in ascending order, the stream indices that start a
// new block:
//
//   - index 0;
//   - every entry immediately after a terminating instruction;
//   - every KindTarget entry;
//   - every KindTryEnd entry (a try region's protection always ends at an
//     exact stream position, regardless of what instruction precedes it);
//   - every KindCatch entry, so a handler's block starts at the handler
//     and never absorbs the instructions that precede it in the stream.
func findLeaders(items []*ir.Item) []int {
	leaders := []int{0}
	seen := map[int]bool{0: true}
	add := func(i int) {
		if i < len(items) && !seen[i] {
			seen[i] = true
			leaders = append(leaders, i)
		}
	}

	for i, it := range items {
		if it.IsTerminator() {
			add(i + 1)
		}
		switch it.Kind {
		case ir.KindTarget, ir.KindTryEnd, ir.KindCatch:
			add(i)
		}
	}

	sortInts(leaders)
	return leaders
}

func sortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

// connectBlocks adds the ordinary (non-exceptional) control-flow edges: for
// each block, the GOTO/BRANCH edges its last entry implies, derived solely
// from that entry's InsnKind, plus the fallthrough edge of an unterminated
// block.
func connectBlocks(g *Graph, labelToBlock map[*ir.Label]BlockID) {
	resolve := func(l *ir.Label) BlockID {
		id, ok := labelToBlock[l]
		if !ok {
			fail("branch targets a label with no matching target entry")
		}
		return id
	}

	for bi, id := range g.order {
		block := g.blocks[id]
		var fallthroughID BlockID
		hasFallthrough := bi+1 < len(g.order)
		if hasFallthrough {
			fallthroughID = g.order[bi+1]
		}

		term, ok := block.LastTerminator()
		if !ok {
			if hasFallthrough {
				eid := g.addEdge(id, fallthroughID, EdgeGoto)
				block.defaultSucc = g.edges[eid].dst
			}
			continue
		}

		switch term.Kind {
		case ir.InsnGoto:
			target := resolve(term.Target)
			g.addEdge(id, target, EdgeGoto)
			if term.Implicit {
				block.defaultSucc = target
			}
		case ir.InsnIf:
			target := resolve(term.Target)
			g.addEdge(id, target, EdgeBranch)
			if !hasFallthrough {
				fail("conditional branch in the last block has no fallthrough target")
			}
			g.addEdge(id, fallthroughID, EdgeGoto)
			block.defaultSucc = fallthroughID
		case ir.InsnSwitch:
			for _, c := range term.Cases {
				g.addEdge(id, resolve(c), EdgeBranch)
			}
			if term.Default == nil {
				fail("switch has no default arm")
			}
			def := resolve(term.Default)
			g.addEdge(id, def, EdgeGoto)
			block.defaultSucc = def
		case ir.InsnThrow, ir.InsnReturn:
			// No ordinary successor.
		}
	}
}

// addCatchEdges adds an EdgeThrow from every block lying inside one or more
// active try regions to every handler in those regions' catch chains,
// innermost region first.
func addCatchEdges(g *Graph, activeAtBlock map[BlockID][]*ir.TryRegion) {
	for _, id := range g.order {
		regions := activeAtBlock[id]
		for i := len(regions) - 1; i >= 0; i-- {
			for h := regions[i].CatchStart; h != nil; h = h.Next {
				target, ok := g.handlerBlock[h]
				if !ok {
					fail("catch handler is never the target of a catch entry")
				}
				g.addEdge(id, target, EdgeThrow)
			}
		}
	}
}

// pruneUnreachable removes every block (and its incident edges) that is
// not reachable from the entry block by following successor edges.
func pruneUnreachable(g *Graph) {
	reachable := map[BlockID]bool{g.entry: true}
	stack := []BlockID{g.entry}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, eid := range g.blocks[id].succs {
			dst := g.edges[eid].dst
			if !reachable[dst] {
				reachable[dst] = true
				stack = append(stack, dst)
			}
		}
	}

	keptOrder := make([]BlockID, 0, len(g.order))
	for _, id := range g.order {
		if reachable[id] {
			keptOrder = append(keptOrder, id)
			continue
		}
		delete(g.blocks, id)
	}
	g.order = keptOrder

	for eid, e := range g.edges {
		if !reachable[e.src] || !reachable[e.dst] {
			delete(g.edges, eid)
		}
	}
	for _, id := range g.order {
		b := g.blocks[id]
		b.succs = filterEdges(b.succs, g.edges)
		b.preds = filterEdges(b.preds, g.edges)
	}

	for id := range g.blockLabel {
		if !reachable[id] {
			delete(g.blockLabel, id)
		}
	}
	for h, id := range g.handlerBlock {
		if !reachable[id] {
			delete(g.handlerBlock, h)
		}
	}
	for r, blocks := range g.regionBlocks {
		kept := blocks[:0]
		for _, id := range blocks {
			if reachable[id] {
				kept = append(kept, id)
			}
		}
		if len(kept) == 0 {
			delete(g.regionBlocks, r)
		} else {
			g.regionBlocks[r] = kept
		}
	}
}

func filterEdges(ids []EdgeID, live map[EdgeID]*Edge) []EdgeID {
	out := ids[:0]
	for _, id := range ids {
		if _, ok := live[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// synthesizeExit designates the graph's exit block: the sole reachable
// block with no successors, if there is exactly one; a fresh empty ghost
// block with an EdgeGoto from every successor-less block, if there is more
// than one; none, if every reachable block has a successor.
func synthesizeExit(g *Graph) {
	var terminal []BlockID
	for _, id := range g.order {
		if len(g.blocks[id].succs) == 0 {
			terminal = append(terminal, id)
		}
	}

	switch len(terminal) {
	case 0:
		return
	case 1:
		g.exit = terminal[0]
		g.hasExit = true
	default:
		ghost := &BasicBlock{}
		id := g.addBlock(ghost)
		for _, t := range terminal {
			g.addEdge(t, id, EdgeGoto)
		}
		g.exit = id
		g.hasExit = true
	}
}
