package cfg

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/redex-go/flowcore/ir"
)

// WriteDOT renders g as a Graphviz DOT digraph: one node per block,
// labelled with its id and a short rendering of its entries, and one edge
// per Edge, styled by EdgeKind (solid for GOTO, dashed for BRANCH, dotted
// for THROW).
func WriteDOT(w io.Writer, g *Graph) error {
	bw := &errWriter{w: w}
	bw.printf("digraph cfg {\n")
	bw.printf("  node [shape=box, fontname=monospace];\n")

	ids := append([]BlockID(nil), g.order...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		b := g.blocks[id]
		label := blockLabel(id, b)
		shape := ""
		if id == g.entry {
			shape = ", style=filled, fillcolor=lightgray"
		}
		bw.printf("  B%d [label=%q%s];\n", id, label, shape)
	}

	for _, id := range ids {
		for _, eid := range g.blocks[id].succs {
			e := g.edges[eid]
			bw.printf("  B%d -> B%d [style=%s, label=%q];\n", e.src, e.dst, dotStyle(e.kind), e.kind.String())
		}
	}

	bw.printf("}\n")
	return bw.err
}

func blockLabel(id BlockID, b *BasicBlock) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "B%d", id)
	for _, it := range b.Entries {
		sb.WriteString("\\n")
		sb.WriteString(itemLabel(it))
	}
	return sb.String()
}

func itemLabel(it *ir.Item) string {
	switch it.Kind {
	case ir.KindInstruction:
		return it.Insn.Op
	case ir.KindCatch:
		return "catch"
	case ir.KindDebug:
		return "debug: " + it.Text
	case ir.KindPosition:
		return "pos: " + it.Text
	default:
		return it.Kind.String()
	}
}

func dotStyle(k EdgeKind) string {
	switch k {
	case EdgeBranch:
		return "dashed"
	case EdgeThrow:
		return "dotted"
	default:
		return "solid"
	}
}

// errWriter lets a sequence of Fprintf calls defer error checking to a
// single point instead of checking after every write.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
