package lattice

import "fmt"

// Domain instantiates the lattice scaffold for a specific analysis variable
// kind. It adds nothing algebraically over Element[C]; it exists as the
// named type analyses actually store in their variable→value maps, and it
// carries a textual rendering suitable for debug output.
type Domain[C comparable] struct {
	Element[C]
}

// TopDomain returns a Domain at ⊤, the state every analysis variable starts
// in optimistically before any fact has been propagated to it.
func TopDomain[C comparable]() Domain[C] {
	return Domain[C]{Element: Top[C]()}
}

// BottomDomain returns a Domain at ⊥.
func BottomDomain[C comparable]() Domain[C] {
	return Domain[C]{Element: Bottom[C]()}
}

// ConstDomain returns a Domain holding the concrete constant c.
func ConstDomain[C comparable](c C) Domain[C] {
	return Domain[C]{Element: Of(c)}
}

// Constant returns the contained constant and true iff the domain is in the
// Value state. It is the named, domain-level alias of Element.AsValue used
// by analyses that read values out of a variable→Domain map.
func (d Domain[C]) Constant() (C, bool) {
	return d.AsValue()
}

// String renders "_|_" for Bottom, "T" for Top, and the carrier's own fmt
// formatting for a Value.
func (d Domain[C]) String() string {
	switch d.State() {
	case StateBottom:
		return "_|_"
	case StateTop:
		return "T"
	default:
		v, _ := d.AsValue()
		return fmt.Sprint(v)
	}
}

// Join, Meet, Widen and Narrow are re-exposed at the Domain level so callers
// that only ever talk to Domain (never the bare Element scaffold) don't need
// to reach into the embedded Element to chain operations that return
// Domain-typed results.

// JoinDomain computes the least upper bound of two domains.
func JoinDomain[C comparable](a, b Domain[C]) Domain[C] {
	return Domain[C]{Element: a.Join(b.Element)}
}

// MeetDomain computes the greatest lower bound of two domains.
func MeetDomain[C comparable](a, b Domain[C]) Domain[C] {
	return Domain[C]{Element: a.Meet(b.Element)}
}

// WidenDomain accelerates convergence; degenerates to JoinDomain here.
func WidenDomain[C comparable](a, b Domain[C]) Domain[C] {
	return Domain[C]{Element: a.Widen(b.Element)}
}

// NarrowDomain refines a widened domain; degenerates to MeetDomain here.
func NarrowDomain[C comparable](a, b Domain[C]) Domain[C] {
	return Domain[C]{Element: a.Narrow(b.Element)}
}
