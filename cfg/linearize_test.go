package cfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redex-go/flowcore/ir"
)

func TestLinearize_StraightLineRoundTrips(t *testing.T) {
	items := []*ir.Item{
		ir.NewInstruction("const"),
		ir.NewInstruction("add"),
		ir.NewReturn("return"),
	}
	g := Build(items)
	rebuilt := Build(Linearize(g))

	require.Len(t, rebuilt.BlockIDs(), 1)
	b, _ := rebuilt.Block(rebuilt.Entry())
	assert.Len(t, b.Entries, 3)
}

func TestLinearize_DiamondRoundTrips(t *testing.T) {
	join := ir.NewLabel("join")
	taken := ir.NewLabel("taken")
	items := []*ir.Item{
		ir.NewIf("if-eqz", taken),
		ir.NewInstruction("nop"),
		ir.NewGoto("goto", join),
		ir.NewTarget(taken),
		ir.NewInstruction("nop"),
		ir.NewTarget(join),
		ir.NewReturn("return"),
	}
	g := Build(items)
	rebuilt := Build(Linearize(g))

	require.Len(t, rebuilt.BlockIDs(), 4)
	headerSuccs := rebuilt.Successors(rebuilt.Entry())
	require.Len(t, headerSuccs, 2)
	var kinds []EdgeKind
	for _, eid := range headerSuccs {
		e, _ := rebuilt.Edge(eid)
		kinds = append(kinds, e.Kind())
	}
	assert.ElementsMatch(t, []EdgeKind{EdgeBranch, EdgeGoto}, kinds)
}

func TestLinearize_DropsRedundantFallthroughGoto(t *testing.T) {
	target := ir.NewLabel("next")
	items := []*ir.Item{
		ir.NewGoto("goto", target), // already adjacent: redundant
		ir.NewTarget(target),
		ir.NewReturn("return"),
	}
	g := Build(items)
	out := Linearize(g)

	for _, it := range out {
		if it.Kind == ir.KindInstruction {
			assert.NotEqual(t, ir.InsnGoto, it.Insn.Kind, "adjacent goto should have been elided")
		}
	}
}
