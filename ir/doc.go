// Package ir defines the minimal "method-item entry" stream the cfg package
// consumes. The instruction encoding and opcode semantics are out of scope
// for this framework (they belong to an external decoder); Item only
// carries the control-flow shape a CFG builder needs: whether an entry is a
// plain instruction, a branch target, a try/catch marker, or debug/position
// metadata that the builder passes through untouched.
//
// Pointer identity matters here, not value equality: a *Label, *TryRegion
// or *CatchHandler is compared by address, the same way the cfg package
// compares branch sources to their targets.
package ir
