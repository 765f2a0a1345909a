package cfg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redex-go/flowcore/ir"
)

func TestWriteDOT_RendersNodesAndEdges(t *testing.T) {
	items := []*ir.Item{
		ir.NewInstruction("nop"),
		ir.NewReturn("return"),
	}
	g := Build(items)

	var sb strings.Builder
	require.NoError(t, WriteDOT(&sb, g))
	out := sb.String()

	assert.True(t, strings.HasPrefix(out, "digraph cfg {"))
	assert.Contains(t, out, "B0")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "}"))
}
