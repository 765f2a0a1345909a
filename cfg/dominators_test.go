package cfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redex-go/flowcore/ir"
)

func TestComputeDominators_Diamond(t *testing.T) {
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
	dom := ComputeDominators(g)

	header := g.Entry()
	idom, ok := dom.Immediate(header)
	require.True(t, ok)
	assert.Equal(t, header, idom)

	join3 := BlockID(3)
	joinIdom, ok := dom.Immediate(join3)
	require.True(t, ok)
	assert.Equal(t, header, joinIdom, "neither diamond arm alone dominates the join; only the header does")

	assert.True(t, dom.Dominates(header, join3))
	assert.False(t, dom.Dominates(BlockID(1), join3))
	assert.False(t, dom.Dominates(BlockID(2), join3))
}

func TestComputeDominators_StraightLine(t *testing.T) {
	items := []*ir.Item{
		ir.NewInstruction("a"),
		ir.NewInstruction("b"),
		ir.NewReturn("return"),
	}
	g := Build(items)
	dom := ComputeDominators(g)

	entry := g.Entry()
	idom, ok := dom.Immediate(entry)
	require.True(t, ok)
	assert.Equal(t, entry, idom)
	assert.True(t, dom.Dominates(entry, entry))
}
