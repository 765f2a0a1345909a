package ir

// Kind discriminates the entries that can appear in a method's instruction
// stream.
type Kind int

const (
	// KindInstruction is an ordinary opcode entry (Insn is set).
	KindInstruction Kind = iota
	// KindTarget marks a branch destination (Label is set). Target entries
	// may only appear at the first position of a block.
	KindTarget
	// KindTryStart opens a try region (Try is set).
	KindTryStart
	// KindTryEnd closes a try region (Try is set, same pointer as the
	// matching KindTryStart).
	KindTryEnd
	// KindCatch marks the first entry of a catch handler (Catch is set).
	KindCatch
	// KindDebug carries a debug-info payload the core passes through
	// unmodified (Text is set).
	KindDebug
	// KindPosition carries a source-position payload the core passes
	// through unmodified (Text is set).
	KindPosition
)

func (k Kind) String() string {
	switch k {
	case KindInstruction:
		return "instruction"
	case KindTarget:
		return "target"
	case KindTryStart:
		return "try-start"
	case KindTryEnd:
		return "try-end"
	case KindCatch:
		return "catch"
	case KindDebug:
		return "debug"
	case KindPosition:
		return "position"
	default:
		return "invalid"
	}
}

// Label is a branch target. It is referenced by pointer identity: two
// Target entries are the "same" target iff they share a *Label, and a
// branch instruction resolves to a target by holding that same pointer.
type Label struct {
	// Name is purely cosmetic, used by the DOT printer and by fixture
	// loaders that resolve symbolic names to pointers; the core never
	// compares it.
	Name string
}

// NewLabel allocates a fresh, uniquely-identified label.
func NewLabel(name string) *Label {
	return &Label{Name: name}
}

// TryRegion identifies a try region. The KindTryStart and KindTryEnd entries
// bracketing the region share the same *TryRegion pointer.
type TryRegion struct {
	// CatchStart is the head of this region's catch-handler chain, in the
	// order handlers are tried.
	CatchStart *CatchHandler
}

// CatchHandler is one link in a try region's catch chain. Next points at
// the next handler tried if this one's guard doesn't match (e.g. a second
// catch clause); nil ends the chain.
type CatchHandler struct {
	Next *CatchHandler
	// Name is cosmetic, as Label.Name.
	Name string
}

// InsnKind describes the control-flow shape of an instruction entry. The
// core never interprets opcodes; only the shape below drives block
// boundaries and edges.
type InsnKind int

const (
	// InsnPlain is straight-line code with no control transfer.
	InsnPlain InsnKind = iota
	// InsnGoto is an unconditional branch to Target.
	InsnGoto
	// InsnIf is a conditional branch: taken goes to Target, not-taken
	// falls through to the next block in stream order.
	InsnIf
	// InsnSwitch is a multi-way branch: each entry in Cases is taken when
	// its case matches, Default otherwise.
	InsnSwitch
	// InsnThrow raises an exception; it has no ordinary successor.
	InsnThrow
	// InsnReturn returns from the method; it has no ordinary successor.
	InsnReturn
)

func (k InsnKind) String() string {
	switch k {
	case InsnPlain:
		return "plain"
	case InsnGoto:
		return "goto"
	case InsnIf:
		return "if"
	case InsnSwitch:
		return "switch"
	case InsnThrow:
		return "throw"
	case InsnReturn:
		return "return"
	default:
		return "invalid"
	}
}

// IsTerminator reports whether an instruction of this kind may only appear
// as the last entry of a basic block.
func (k InsnKind) IsTerminator() bool {
	switch k {
	case InsnGoto, InsnIf, InsnSwitch, InsnThrow, InsnReturn:
		return true
	default:
		return false
	}
}

// Instruction is the opcode-agnostic payload of a KindInstruction entry.
type Instruction struct {
	// Op is an uninterpreted opcode mnemonic, carried for debug output
	// only; the core never branches on it.
	Op string
	Kind InsnKind

	// Target is the branch destination for InsnGoto and InsnIf.
	Target *Label
	// Implicit is meaningful only for InsnGoto: it marks a goto that is
	// known to be a fallthrough encoding (e.g. produced by a decoder that
	// always emits an explicit branch), making it eligible to become the
	// block's default successor the same way a true fallthrough would.
	// An InsnGoto with Implicit == false is an ordinary unconditional jump
	// and is never a default successor.
	Implicit bool

	// Cases and Default describe InsnSwitch: Cases[i] is the target for
	// case i, in declaration order; Default is taken when no case matches.
	Cases   []*Label
	Default *Label
}

// Item is one entry in a method's instruction stream.
type Item struct {
	Kind Kind

	// Insn is set iff Kind == KindInstruction.
	Insn *Instruction
	// Label is set iff Kind == KindTarget.
	Label *Label
	// Try is set iff Kind == KindTryStart or KindTryEnd.
	Try *TryRegion
	// Catch is set iff Kind == KindCatch.
	Catch *CatchHandler
	// Text is set iff Kind == KindDebug or KindPosition.
	Text string
}

// Instruction entries built with these constructors are the only ones the
// cfg builder inspects for control-flow shape; everything else (Target,
// TryStart, TryEnd, Catch, Debug, Position) is a marker consumed by pointer
// identity or passed through untouched.

// NewInstruction returns a plain, non-terminating instruction entry.
func NewInstruction(op string) *Item {
	return &Item{Kind: KindInstruction, Insn: &Instruction{Op: op, Kind: InsnPlain}}
}

// NewGoto returns an unconditional branch entry to target.
func NewGoto(op string, target *Label) *Item {
	return &Item{Kind: KindInstruction, Insn: &Instruction{Op: op, Kind: InsnGoto, Target: target}}
}

// NewImplicitGoto returns an unconditional branch entry to target that is
// known to be a fallthrough encoding (see Instruction.Implicit).
func NewImplicitGoto(op string, target *Label) *Item {
	return &Item{Kind: KindInstruction, Insn: &Instruction{Op: op, Kind: InsnGoto, Target: target, Implicit: true}}
}

// NewIf returns a conditional branch entry: taken goes to target, not-taken
// falls through to the next block in stream order.
func NewIf(op string, target *Label) *Item {
	return &Item{Kind: KindInstruction, Insn: &Instruction{Op: op, Kind: InsnIf, Target: target}}
}

// NewSwitch returns a multi-way branch entry.
func NewSwitch(op string, cases []*Label, def *Label) *Item {
	return &Item{Kind: KindInstruction, Insn: &Instruction{Op: op, Kind: InsnSwitch, Cases: cases, Default: def}}
}

// NewThrow returns a throw entry.
func NewThrow(op string) *Item {
	return &Item{Kind: KindInstruction, Insn: &Instruction{Op: op, Kind: InsnThrow}}
}

// NewReturn returns a return entry.
func NewReturn(op string) *Item {
	return &Item{Kind: KindInstruction, Insn: &Instruction{Op: op, Kind: InsnReturn}}
}

// NewTarget returns a branch-destination marker entry for label.
func NewTarget(label *Label) *Item {
	return &Item{Kind: KindTarget, Label: label}
}

// NewTryStart returns the opening marker of a try region.
func NewTryStart(region *TryRegion) *Item {
	return &Item{Kind: KindTryStart, Try: region}
}

// NewTryEnd returns the closing marker of a try region.
func NewTryEnd(region *TryRegion) *Item {
	return &Item{Kind: KindTryEnd, Try: region}
}

// NewCatch returns the entry marking the start of handler's code.
func NewCatch(handler *CatchHandler) *Item {
	return &Item{Kind: KindCatch, Catch: handler}
}

// NewDebug returns a debug-info passthrough entry.
func NewDebug(text string) *Item {
	return &Item{Kind: KindDebug, Text: text}
}

// NewPosition returns a source-position passthrough entry.
func NewPosition(text string) *Item {
	return &Item{Kind: KindPosition, Text: text}
}

// IsTerminator reports whether item must be the last entry of its block.
func (it *Item) IsTerminator() bool {
	return it.Kind == KindInstruction && it.Insn.Kind.IsTerminator()
}
