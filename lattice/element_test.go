package lattice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElement_Constructors(t *testing.T) {
	assert.True(t, Bottom[int]().IsBottom())
	assert.True(t, Top[int]().IsTop())
	assert.True(t, Of(5).IsValue())

	var zero Element[int]
	assert.True(t, zero.IsTop(), "zero value of Element must be Top")
}

func TestElement_AsValue(t *testing.T) {
	v, ok := Of(5).AsValue()
	assert.True(t, ok)
	assert.Equal(t, 5, v)

	_, ok = Top[int]().AsValue()
	assert.False(t, ok)

	_, ok = Bottom[int]().AsValue()
	assert.False(t, ok)
}

func TestElement_MustValue_PanicsOnNonValue(t *testing.T) {
	assert.Panics(t, func() { Top[int]().MustValue() })
	assert.Panics(t, func() { Bottom[int]().MustValue() })
	assert.NotPanics(t, func() { Of(5).MustValue() })
}

func TestElement_TrivialLattice(t *testing.T) {
	// top ∨ bottom = top; top ∧ bottom = bottom; of(5) ∨ of(5) = of(5);
	// of(5) ∨ of(6) = top; of(5) ∧ of(6) = bottom.
	assert.True(t, Top[int]().Join(Bottom[int]()).IsTop())
	assert.True(t, Top[int]().Meet(Bottom[int]()).IsBottom())
	assert.True(t, Of(5).Join(Of(5)).Equals(Of(5)))
	assert.True(t, Of(5).Join(Of(6)).IsTop())
	assert.True(t, Of(5).Meet(Of(6)).IsBottom())
}

func TestElement_Leq(t *testing.T) {
	assert.True(t, Bottom[int]().Leq(Of(5)))
	assert.True(t, Bottom[int]().Leq(Top[int]()))
	assert.True(t, Of(5).Leq(Top[int]()))
	assert.True(t, Of(5).Leq(Of(5)))
	assert.False(t, Of(5).Leq(Of(6)))
	assert.False(t, Top[int]().Leq(Of(5)))
	assert.False(t, Top[int]().Leq(Bottom[int]()))
}

// elementFixtures gives a representative a, b, c triple from each lattice
// level, used by the algebraic-law tests below.
func elementFixtures() []Element[int] {
	return []Element[int]{Bottom[int](), Of(1), Of(2), Top[int]()}
}

func TestElement_Idempotence(t *testing.T) {
	for _, a := range elementFixtures() {
		assert.True(t, a.Join(a).Equals(a), "a ∨ a = a for %v", a)
		assert.True(t, a.Meet(a).Equals(a), "a ∧ a = a for %v", a)
	}
}

func TestElement_Commutativity(t *testing.T) {
	fixtures := elementFixtures()
	for _, a := range fixtures {
		for _, b := range fixtures {
			assert.True(t, a.Join(b).Equals(b.Join(a)), "a ∨ b = b ∨ a for %v, %v", a, b)
			assert.True(t, a.Meet(b).Equals(b.Meet(a)), "a ∧ b = b ∧ a for %v, %v", a, b)
		}
	}
}

func TestElement_Associativity(t *testing.T) {
	fixtures := elementFixtures()
	for _, a := range fixtures {
		for _, b := range fixtures {
			for _, c := range fixtures {
				lhs := a.Join(b).Join(c)
				rhs := a.Join(b.Join(c))
				assert.True(t, lhs.Equals(rhs), "(a∨b)∨c = a∨(b∨c) for %v,%v,%v", a, b, c)

				lhs = a.Meet(b).Meet(c)
				rhs = a.Meet(b.Meet(c))
				assert.True(t, lhs.Equals(rhs), "(a∧b)∧c = a∧(b∧c) for %v,%v,%v", a, b, c)
			}
		}
	}
}

func TestElement_Absorption(t *testing.T) {
	fixtures := elementFixtures()
	for _, a := range fixtures {
		for _, b := range fixtures {
			assert.True(t, a.Join(a.Meet(b)).Equals(a), "a ∨ (a ∧ b) = a for %v,%v", a, b)
			assert.True(t, a.Meet(a.Join(b)).Equals(a), "a ∧ (a ∨ b) = a for %v,%v", a, b)
		}
	}
}

func TestElement_OrderConsistency(t *testing.T) {
	fixtures := elementFixtures()
	for _, a := range fixtures {
		for _, b := range fixtures {
			leq := a.Leq(b)
			joinIsB := a.Join(b).Equals(b)
			meetIsA := a.Meet(b).Equals(a)
			assert.Equal(t, leq, joinIsB, "a⊑b iff a∨b=b for %v,%v", a, b)
			assert.Equal(t, leq, meetIsA, "a⊑b iff a∧b=a for %v,%v", a, b)
		}
	}
}

func TestElement_Identity(t *testing.T) {
	for _, a := range elementFixtures() {
		assert.True(t, a.Join(Bottom[int]()).Equals(a), "a ∨ ⊥ = a for %v", a)
		assert.True(t, a.Meet(Top[int]()).Equals(a), "a ∧ ⊤ = a for %v", a)
	}
}

func TestElement_WidenNarrowDegenerateToJoinMeet(t *testing.T) {
	fixtures := elementFixtures()
	for _, a := range fixtures {
		for _, b := range fixtures {
			assert.True(t, a.Widen(b).Equals(a.Join(b)))
			assert.True(t, a.Narrow(b).Equals(a.Meet(b)))
		}
	}
}
