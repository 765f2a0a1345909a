package diagnostic

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redex-go/flowcore/ir"
)

func TestLint_CleanStreamHasNoFindings(t *testing.T) {
	taken := ir.NewLabel("taken")
	items := []*ir.Item{
		ir.NewIf("if-eqz", taken),
		ir.NewInstruction("nop"),
		ir.NewTarget(taken),
		ir.NewReturn("return"),
	}
	report := Lint(items)
	assert.False(t, report.HasFindings())
}

func TestLint_DanglingTarget(t *testing.T) {
	ghost := ir.NewLabel("nowhere")
	items := []*ir.Item{
		ir.NewGoto("goto", ghost),
	}
	report := Lint(items)
	require.True(t, report.HasFindings())
	assert.Equal(t, RuleDanglingTarget, report.Findings[0].Rule)
}

func TestLint_SwitchMissingDefault(t *testing.T) {
	taken := ir.NewLabel("case0")
	items := []*ir.Item{
		ir.NewSwitch("switch", []*ir.Label{taken}, nil),
		ir.NewTarget(taken),
		ir.NewReturn("return"),
	}
	report := Lint(items)
	require.True(t, report.HasFindings())
	var found bool
	for _, f := range report.Findings {
		if f.Rule == RuleMissingDefault {
			found = true
		}
	}
	assert.True(t, found)
}

func TestLint_UnclosedTryRegion(t *testing.T) {
	region := &ir.TryRegion{}
	items := []*ir.Item{
		ir.NewTryStart(region),
		ir.NewInstruction("nop"),
		ir.NewReturn("return"),
	}
	report := Lint(items)
	require.True(t, report.HasFindings())
	assert.Equal(t, RuleUnclosedTry, report.Findings[len(report.Findings)-1].Rule)
}

func TestLint_MismatchedTryEnd(t *testing.T) {
	regionA := &ir.TryRegion{}
	regionB := &ir.TryRegion{}
	items := []*ir.Item{
		ir.NewTryStart(regionA),
		ir.NewInstruction("nop"),
		ir.NewTryEnd(regionB),
		ir.NewReturn("return"),
	}
	report := Lint(items)
	require.True(t, report.HasFindings())
	assert.Equal(t, RuleMismatchedTry, report.Findings[0].Rule)
}

func TestLint_CatchNeverReferencedByTryChain(t *testing.T) {
	orphan := &ir.CatchHandler{Name: "orphan"}
	items := []*ir.Item{
		ir.NewCatch(orphan),
		ir.NewReturn("return"),
	}
	report := Lint(items)
	require.True(t, report.HasFindings())
	assert.Equal(t, RuleOrphanCatch, report.Findings[0].Rule)
}

func TestLint_CatchReferencedButNeverEmitted(t *testing.T) {
	handler := &ir.CatchHandler{Name: "h"}
	region := &ir.TryRegion{CatchStart: handler}
	items := []*ir.Item{
		ir.NewTryStart(region),
		ir.NewThrow("throw"),
		ir.NewTryEnd(region),
		ir.NewReturn("return"),
	}
	report := Lint(items)
	require.True(t, report.HasFindings())
	assert.Equal(t, RuleUnreachedCatch, report.Findings[0].Rule)
}

func TestLint_TrailingIfHasNoFallthrough(t *testing.T) {
	taken := ir.NewLabel("taken")
	items := []*ir.Item{
		ir.NewTarget(taken),
		ir.NewIf("if-eqz", taken),
	}
	report := Lint(items)
	require.True(t, report.HasFindings())
	var found bool
	for _, f := range report.Findings {
		if f.Rule == RuleDanglingIf {
			found = true
		}
	}
	assert.True(t, found)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	report := &Report{Findings: []Finding{{Rule: RuleDanglingTarget, Index: 3, Message: "boom"}}}
	require.NoError(t, WriteText(&buf, report))
	assert.Contains(t, buf.String(), "dangling-target")
	assert.Contains(t, buf.String(), "item 3")
}

func TestWriteText_Clean(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, &Report{}))
	assert.Equal(t, "no findings\n", buf.String())
}

func TestWriteSARIF(t *testing.T) {
	var buf bytes.Buffer
	report := &Report{Findings: []Finding{{Rule: RuleUnclosedTry, Index: 5, Message: "boom"}}}
	require.NoError(t, WriteSARIF(&buf, report))
	out := buf.String()
	assert.True(t, strings.Contains(out, "try-unclosed"))
	assert.True(t, strings.Contains(out, "\"version\""))
}
