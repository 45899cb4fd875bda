// Package spagerr provides the structured error type shared by every core
// SPaG package: the regex validator/expander, the Thompson/subset/Hopcroft
// pipeline, the BNF internalizer, and the LL(1) table builder.
//
// A single failure always carries a machine-readable Kind, a human-readable
// Message, and (depending on the failing stage) a Position into a regex
// pattern or the offending Symbol from a BNF source, per spec §6.4 and §7.
package spagerr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure. See spec §7.
type Kind string

const (
	// KindInvalidPattern covers regex lex/validate failures: empty pattern,
	// unbalanced group/class, dangling/unknown escape, malformed range,
	// disallowed character, empty character class.
	KindInvalidPattern Kind = "InvalidPattern"

	// KindMalformedExpression covers regex parse failures: operand/operator
	// arity mismatch discovered during shunting-yard reduction.
	KindMalformedExpression Kind = "MalformedExpression"

	// KindMalformedGrammar covers BNF failures: missing/unknown start
	// symbol, no productions, malformed production record.
	KindMalformedGrammar Kind = "MalformedGrammar"

	// KindInternal covers invariant violations that should be unreachable
	// given a validated input; present so bugs fail loudly instead of
	// silently producing a wrong artifact.
	KindInternal Kind = "Internal"
)

// SubKind further narrows a Kind for callers that want to branch on the
// precise failure reason without parsing Message.
type SubKind string

const (
	SubEmptyPattern       SubKind = "empty pattern"
	SubUnbalancedGroup    SubKind = "unbalanced group"
	SubUnbalancedClass    SubKind = "unbalanced class"
	SubDanglingEscape     SubKind = "dangling escape"
	SubUnknownEscape      SubKind = "unknown escape"
	SubMalformedRange     SubKind = "malformed range"
	SubDisallowedChar     SubKind = "disallowed character"
	SubEmptyClass         SubKind = "empty character class"
	SubArityMismatch      SubKind = "operand/operator arity mismatch"
	SubNoProductions      SubKind = "no productions"
	SubUnknownStart       SubKind = "unknown start symbol"
	SubMalformedRecord    SubKind = "malformed production record"
	SubDuplicateTokenName SubKind = "duplicate token name"
)

// Sentinel errors for errors.Is checks against a specific failure reason,
// one per SubKind, matching coregx/coregex/nfa/error.go's "var (...)" block
// of sentinels. Every *Error built by InvalidPattern, MalformedExpression
// or MalformedGrammar below wraps the sentinel matching its SubKind as
// Cause, so errors.Is(err, ErrEmptyClass) reports the failure reason.
var (
	ErrEmptyPattern       = errors.New("spagerr: empty pattern")
	ErrUnbalancedGroup    = errors.New("spagerr: unbalanced group")
	ErrUnbalancedClass    = errors.New("spagerr: unbalanced class")
	ErrDanglingEscape     = errors.New("spagerr: dangling escape")
	ErrUnknownEscape      = errors.New("spagerr: unknown escape")
	ErrMalformedRange     = errors.New("spagerr: malformed range")
	ErrDisallowedChar     = errors.New("spagerr: disallowed character")
	ErrEmptyClass         = errors.New("spagerr: empty character class")
	ErrArityMismatch      = errors.New("spagerr: operand/operator arity mismatch")
	ErrNoProductions      = errors.New("spagerr: no productions")
	ErrUnknownStart       = errors.New("spagerr: unknown start symbol")
	ErrMalformedRecord    = errors.New("spagerr: malformed production record")
	ErrDuplicateTokenName = errors.New("spagerr: duplicate token name")
)

var subSentinel = map[SubKind]error{
	SubEmptyPattern:       ErrEmptyPattern,
	SubUnbalancedGroup:    ErrUnbalancedGroup,
	SubUnbalancedClass:    ErrUnbalancedClass,
	SubDanglingEscape:     ErrDanglingEscape,
	SubUnknownEscape:      ErrUnknownEscape,
	SubMalformedRange:     ErrMalformedRange,
	SubDisallowedChar:     ErrDisallowedChar,
	SubEmptyClass:         ErrEmptyClass,
	SubArityMismatch:      ErrArityMismatch,
	SubNoProductions:      ErrNoProductions,
	SubUnknownStart:       ErrUnknownStart,
	SubMalformedRecord:    ErrMalformedRecord,
	SubDuplicateTokenName: ErrDuplicateTokenName,
}

// Error is the structured error returned by every SPaG core package.
//
// Error implements Unwrap so callers can use errors.Is/errors.As against
// both the wrapped Cause and the package-level sentinel values above.
type Error struct {
	Kind     Kind
	Sub      SubKind
	Message  string
	Position int  // zero-based offset into the pattern; -1 if not applicable
	Symbol   string // offending BNF symbol or production description; "" if not applicable
	Cause    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Position >= 0 && e.Symbol != "":
		return fmt.Sprintf("%s: %s (symbol %q, position %d)", e.Kind, e.Message, e.Symbol, e.Position)
	case e.Position >= 0:
		return fmt.Sprintf("%s: %s (position %d)", e.Kind, e.Message, e.Position)
	case e.Symbol != "":
		return fmt.Sprintf("%s: %s (symbol %q)", e.Kind, e.Message, e.Symbol)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// InvalidPattern builds a KindInvalidPattern error at the given position.
func InvalidPattern(sub SubKind, position int, message string) *Error {
	return &Error{Kind: KindInvalidPattern, Sub: sub, Message: message, Position: position, Symbol: "", Cause: subSentinel[sub]}
}

// MalformedExpression builds a KindMalformedExpression error.
func MalformedExpression(position int, message string) *Error {
	return &Error{Kind: KindMalformedExpression, Sub: SubArityMismatch, Message: message, Position: position, Symbol: "", Cause: ErrArityMismatch}
}

// MalformedGrammar builds a KindMalformedGrammar error naming the offending symbol.
func MalformedGrammar(sub SubKind, symbol string, message string) *Error {
	return &Error{Kind: KindMalformedGrammar, Sub: sub, Message: message, Position: -1, Symbol: symbol, Cause: subSentinel[sub]}
}

// Internal builds a KindInternal error wrapping cause, for invariant
// violations that indicate a bug rather than bad input.
func Internal(message string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: message, Position: -1, Symbol: "", Cause: cause}
}
