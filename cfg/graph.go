package cfg

import "github.com/redex-go/flowcore/ir"

// Graph is a control flow graph over a method's instruction stream. Graphs
// are always editable: Build transfers ownership of the instruction stream
// into the blocks it carves out, and the returned Graph owns that storage
// for the rest of its lifetime. There is no non-editable, iterator-into-
// shared-storage mode; treating the input stream as moved-in on
// construction is simpler and is the only mode a consumer of this package
// ever needs (see the package doc for the minimal Entry/Exit/Predecessors/
// Successors/Source/Target interface fixpoint iterators drive against).
type Graph struct {
	blocks map[BlockID]*BasicBlock
	order  []BlockID // block ids in ascending (== stream discovery) order

	edges  map[EdgeID]*Edge
	nextEO EdgeID

	entry   BlockID
	exit    BlockID
	hasExit bool

	// blockLabel, regionBlocks and handlerBlock are bookkeeping Build
	// populates so Linearize can re-synthesize the Target/TryStart/TryEnd
	// markers it strips out of block Entries.
	blockLabel   map[BlockID]*ir.Label
	regionBlocks map[*ir.TryRegion][]BlockID
	handlerBlock map[*ir.CatchHandler]BlockID
}

func newGraph() *Graph {
	return &Graph{
		blocks:       make(map[BlockID]*BasicBlock),
		edges:        make(map[EdgeID]*Edge),
		blockLabel:   make(map[BlockID]*ir.Label),
		regionBlocks: make(map[*ir.TryRegion][]BlockID),
		handlerBlock: make(map[*ir.CatchHandler]BlockID),
	}
}

// BlockIDs returns every block id in the graph, in ascending (stream
// discovery) order. The entry block is always BlockIDs()[0] when the graph
// is non-empty.
func (g *Graph) BlockIDs() []BlockID {
	out := make([]BlockID, len(g.order))
	copy(out, g.order)
	return out
}

// Block returns the block with the given id, and whether it exists.
func (g *Graph) Block(id BlockID) (*BasicBlock, bool) {
	b, ok := g.blocks[id]
	return b, ok
}

// Edge returns the edge with the given id, and whether it exists.
func (g *Graph) Edge(id EdgeID) (*Edge, bool) {
	e, ok := g.edges[id]
	return e, ok
}

// Entry returns the graph's entry block. A non-empty graph always has one.
func (g *Graph) Entry() BlockID { return g.entry }

// Exit returns the graph's exit block, and whether one exists. Every
// return/throw path converges on a single real exit block, or Build
// synthesizes an empty ghost block as the common exit when more than one
// block has no successor; a graph with no exit-reaching path at all (e.g.
// an infinite loop) has none.
func (g *Graph) Exit() (BlockID, bool) {
	if !g.hasExit {
		return 0, false
	}
	return g.exit, true
}

// Successors returns the ids of edges leaving block id. Panics with a
// ContractError if id isn't a block of this graph.
func (g *Graph) Successors(id BlockID) []EdgeID {
	b, ok := g.blocks[id]
	if !ok {
		violate("block %d does not belong to this graph", id)
	}
	return b.succs
}

// Predecessors returns the ids of edges entering block id.
func (g *Graph) Predecessors(id BlockID) []EdgeID {
	b, ok := g.blocks[id]
	if !ok {
		violate("block %d does not belong to this graph", id)
	}
	return b.preds
}

// Source returns the block edge id leaves.
func (g *Graph) Source(id EdgeID) BlockID {
	e, ok := g.edges[id]
	if !ok {
		violate("edge %d does not belong to this graph", id)
	}
	return e.src
}

// Target returns the block edge id enters.
func (g *Graph) Target(id EdgeID) BlockID {
	e, ok := g.edges[id]
	if !ok {
		violate("edge %d does not belong to this graph", id)
	}
	return e.dst
}

// addBlock registers a freshly carved block and assigns it the next id in
// stream order: one past the highest id still in the graph, so a block
// added after pruning never reuses a live id.
func (g *Graph) addBlock(b *BasicBlock) BlockID {
	id := BlockID(0)
	if n := len(g.order); n > 0 {
		id = g.order[n-1] + 1
	}
	b.id = id
	b.defaultSucc = -1
	g.blocks[id] = b
	g.order = append(g.order, id)
	return id
}

// addEdge links src to dst with the given kind, deduplicating: a second
// request for the same (src, dst, kind) triple returns the existing edge
// id instead of creating a parallel one.
func (g *Graph) addEdge(src, dst BlockID, kind EdgeKind) EdgeID {
	from := g.blocks[src]
	for _, eid := range from.succs {
		e := g.edges[eid]
		if e.dst == dst && e.kind == kind {
			return eid
		}
	}
	id := g.nextEO
	g.nextEO++
	e := &Edge{id: id, src: src, dst: dst, kind: kind}
	g.edges[id] = e
	from.succs = append(from.succs, id)
	g.blocks[dst].preds = append(g.blocks[dst].preds, id)
	return id
}
