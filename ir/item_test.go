package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTerminator(t *testing.T) {
	assert.False(t, NewInstruction("nop").IsTerminator())
	assert.True(t, NewGoto("goto", NewLabel("L")).IsTerminator())
	assert.True(t, NewIf("if-eqz", NewLabel("L")).IsTerminator())
	assert.True(t, NewSwitch("switch", nil, NewLabel("L")).IsTerminator())
	assert.True(t, NewThrow("throw").IsTerminator())
	assert.True(t, NewReturn("return").IsTerminator())
	assert.False(t, NewTarget(NewLabel("L")).IsTerminator())
	assert.False(t, NewDebug("line 3").IsTerminator())
}

func TestLabelPointerIdentity(t *testing.T) {
	l1 := NewLabel("L")
	l2 := NewLabel("L")
	assert.NotSame(t, l1, l2, "two labels with the same name are distinct targets")

	target := NewTarget(l1)
	branch := NewGoto("goto", l1)
	assert.Same(t, l1, target.Label)
	assert.Same(t, l1, branch.Insn.Target)
}

func TestTryRegionCatchChain(t *testing.T) {
	inner := &CatchHandler{Name: "inner"}
	outer := &CatchHandler{Name: "outer", Next: nil}
	inner.Next = outer

	region := &TryRegion{CatchStart: inner}
	start := NewTryStart(region)
	end := NewTryEnd(region)
	assert.Same(t, region, start.Try)
	assert.Same(t, region, end.Try)
	assert.Same(t, inner, region.CatchStart)
	assert.Same(t, outer, region.CatchStart.Next)
}
