package cfg

import "fmt"

// StructuralError reports that an instruction stream violates one of the
// structural invariants Build relies on (a dangling branch target, a
// mismatched try/catch marker, a switch with no default arm). Build panics
// with a *StructuralError; it never returns one.
type StructuralError struct {
	Reason string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("cfg: malformed instruction stream: %s", e.Reason)
}

func fail(format string, args ...any) {
	panic(&StructuralError{Reason: fmt.Sprintf(format, args...)})
}

// ContractError reports that a caller used the Graph API in a way its
// preconditions forbid: passing Successors, Predecessors, Source or Target
// a block or edge id the graph doesn't own. Use of a Graph after Linearize
// is not checked.
type ContractError struct {
	Reason string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("cfg: contract violation: %s", e.Reason)
}

func violate(format string, args ...any) {
	panic(&ContractError{Reason: fmt.Sprintf(format, args...)})
}
