// Package nfa implements Thompson's construction (spec §4.3): turning a
// regex AST (package regex) into a nondeterministic finite automaton
// ready for subset construction (package dfa).
//
// Grounded structurally on coregx/coregex/nfa/nfa.go's dense arena of
// integer-indexed states; the transition/state shape itself is rewritten
// for spec §3's simpler "at most one labeled transition, at most two
// outgoing edges" NFA model instead of the teacher's byte-range/PikeVM
// model.
package nfa

import "errors"

// Sentinel errors for errors.Is checks against internal invariant
// violations. Thompson construction has no user-facing failure mode of
// its own beyond what regex.Parse already reports (spec §9). No function
// of this package returns or wraps these values: Merge and build report
// their invariant failures as spagerr Internal errors, and State panics
// on an out-of-range id.
var (
	ErrInvalidState = errors.New("nfa: invalid state id")
	ErrEmptyNFA     = errors.New("nfa: empty automaton")
)
