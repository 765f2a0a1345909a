// Package diagnostic re-walks an instruction stream with the same boundary
// rules cfg.Build enforces, but collects every violation it finds instead of
// aborting on the first one. It never constructs a cfg.Graph and never
// changes the core's fatal contract — this is CLI-side tooling only.
package diagnostic

import (
	"fmt"

	"github.com/redex-go/flowcore/ir"
)

// Rule names a specific boundary violation a Finding reports.
type Rule string

const (
	RuleDanglingTarget Rule = "dangling-target"
	RuleMissingDefault Rule = "switch-missing-default"
	RuleMismatchedTry  Rule = "try-end-mismatch"
	RuleUnclosedTry    Rule = "try-unclosed"
	RuleOrphanCatch    Rule = "catch-not-in-chain"
	RuleUnreachedCatch Rule = "catch-never-emitted"
	RuleDanglingIf     Rule = "if-missing-fallthrough"
)

// Finding is one boundary violation found at a specific stream position.
// Index is the position of the offending entry in the original []*ir.Item;
// it is len(items), the end of the stream, for a try region left open, and
// -1 for a catch handler that a try region references but that never
// appears in the stream.
type Finding struct {
	Rule    Rule
	Index   int
	Message string
}

// Report collects every Finding from one Lint pass.
type Report struct {
	Findings []Finding
}

// HasFindings reports whether the stream failed any check.
func (r *Report) HasFindings() bool {
	return len(r.Findings) > 0
}

func (r *Report) add(rule Rule, index int, format string, args ...interface{}) {
	r.Findings = append(r.Findings, Finding{Rule: rule, Index: index, Message: fmt.Sprintf(format, args...)})
}

// Lint checks items against the same structural rules cfg.Build enforces —
// every branch/switch target resolves to a KindTarget entry, every switch
// has a default arm, every try region opens and closes in matching pairs,
// and every catch handler a region's chain references has a matching
// KindCatch entry in the stream — reporting every violation it finds rather
// than stopping at the first.
func Lint(items []*ir.Item) *Report {
	report := &Report{}
	if len(items) == 0 {
		return report
	}

	targets := map[*ir.Label]bool{}
	catchEntries := map[*ir.CatchHandler]bool{}
	for _, it := range items {
		switch it.Kind {
		case ir.KindTarget:
			targets[it.Label] = true
		case ir.KindCatch:
			catchEntries[it.Catch] = true
		}
	}

	checkTarget := func(index int, l *ir.Label, context string) {
		if l != nil && !targets[l] {
			report.add(RuleDanglingTarget, index, "%s targets a label with no matching target entry", context)
		}
	}

	referencedHandlers := map[*ir.CatchHandler]bool{}
	var activeStack []*ir.TryRegion
	for i, it := range items {
		switch it.Kind {
		case ir.KindInstruction:
			switch it.Insn.Kind {
			case ir.InsnGoto:
				checkTarget(i, it.Insn.Target, "goto")
			case ir.InsnIf:
				checkTarget(i, it.Insn.Target, "conditional branch")
				if i == len(items)-1 {
					report.add(RuleDanglingIf, i, "conditional branch at end of stream has no fallthrough target")
				}
			case ir.InsnSwitch:
				for _, c := range it.Insn.Cases {
					checkTarget(i, c, "switch case")
				}
				if it.Insn.Default == nil {
					report.add(RuleMissingDefault, i, "switch has no default arm")
				} else {
					checkTarget(i, it.Insn.Default, "switch default")
				}
			}
		case ir.KindTryStart:
			activeStack = append(activeStack, it.Try)
			for h := it.Try.CatchStart; h != nil; h = h.Next {
				referencedHandlers[h] = true
			}
		case ir.KindTryEnd:
			if len(activeStack) == 0 || activeStack[len(activeStack)-1] != it.Try {
				report.add(RuleMismatchedTry, i, "try-end for a region that was not the innermost active region")
				break
			}
			activeStack = activeStack[:len(activeStack)-1]
		}
	}
	if len(activeStack) != 0 {
		report.add(RuleUnclosedTry, len(items), "%d try region(s) opened but never closed", len(activeStack))
	}

	for h := range referencedHandlers {
		if !catchEntries[h] {
			report.add(RuleUnreachedCatch, -1, "catch handler %q is referenced by a try region but has no matching catch entry", h.Name)
		}
	}
	for c := range catchEntries {
		if !referencedHandlers[c] {
			// Finding the offending index requires a second pass since the
			// map above is unordered; linear scan keeps the report's index
			// accurate without needing a second map.
			for i, it := range items {
				if it.Kind == ir.KindCatch && it.Catch == c {
					report.add(RuleOrphanCatch, i, "catch entry is not referenced by any enclosing try region's handler chain")
					break
				}
			}
		}
	}

	return report
}
