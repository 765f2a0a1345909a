package lattice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomain_String(t *testing.T) {
	assert.Equal(t, "_|_", BottomDomain[int]().String())
	assert.Equal(t, "T", TopDomain[int]().String())
	assert.Equal(t, "5", ConstDomain(5).String())
	assert.Equal(t, "hi", ConstDomain("hi").String())
}

func TestDomain_Constant(t *testing.T) {
	v, ok := ConstDomain(42).Constant()
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	_, ok = TopDomain[int]().Constant()
	assert.False(t, ok)
	_, ok = BottomDomain[int]().Constant()
	assert.False(t, ok)
}

func TestDomain_JoinMeetWidenNarrow(t *testing.T) {
	a := ConstDomain(5)
	b := ConstDomain(6)

	assert.True(t, JoinDomain(a, b).IsTop())
	assert.True(t, MeetDomain(a, b).IsBottom())
	assert.True(t, WidenDomain(a, b).Equals(JoinDomain(a, b).Element))
	assert.True(t, NarrowDomain(a, b).Equals(MeetDomain(a, b).Element))
}

// TestDomain_UsableAsMapValue exercises Domain as a cell in a map from
// analysis variable name to propagated value.
func TestDomain_UsableAsMapValue(t *testing.T) {
	cells := map[string]Domain[int]{
		"x": TopDomain[int](),
		"y": ConstDomain(7),
	}
	cells["x"] = JoinDomain(cells["x"], ConstDomain(3))
	assert.True(t, cells["x"].IsTop())
	v, ok := cells["y"].Constant()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
}
