// Package scanner orchestrates regex -> NFA -> DFA compilation for a named
// set of patterns (spec §4, §7): a scanner.Source declares token names and
// their patterns in declaration order (significant for accept-label
// tie-breaking, spec §4.4 step 3), and Compile walks the whole pipeline,
// collecting a per-pattern error for every pattern that fails rather than
// aborting at the first one (spec §7: "the scanner attempts every pattern
// and reports all failures together").
//
// Grounded on coregx/coregex/regex.go's layered Compile/MustCompile API.
package scanner

import (
	"fmt"
	"strings"

	"github.com/spag/spag/dfa"
	"github.com/spag/spag/nfa"
	"github.com/spag/spag/regex"
	"github.com/spag/spag/spagerr"
)

// Rule is one named pattern, in declaration order.
type Rule struct {
	Name    string
	Pattern string
}

// Source is a named set of scanner rules.
type Source struct {
	Name  string
	Rules []Rule
}

// CompileError aggregates every per-pattern failure from one Compile call.
type CompileError struct {
	SourceName string
	Errs       []error
}

func (e *CompileError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "scanner %q: %d pattern error(s):", e.SourceName, len(e.Errs))
	for _, err := range e.Errs {
		fmt.Fprintf(&b, "\n  - %v", err)
	}
	return b.String()
}

// Unwrap exposes every collected error to errors.Is/errors.As (Go 1.20+
// multi-error unwrap).
func (e *CompileError) Unwrap() []error { return e.Errs }

// Compile runs the full regex -> NFA -> DFA pipeline for src. Every rule is
// attempted even after an earlier one fails; a non-nil error is always a
// *CompileError listing every failing rule, except for source-level
// failures (no rules at all) and internal failures from nfa.Merge or
// dfa.Build, which are returned directly.
//
// On success, Compile also returns any shadow warnings dfa.Build
// discovered (spec §9: same-prefix pattern collisions).
func Compile(src Source) (*dfa.DFA, []dfa.Shadow, error) {
	if len(src.Rules) == 0 {
		return nil, nil, spagerr.Internal(fmt.Sprintf("scanner source %q declares no rules", src.Name), nil)
	}

	seen := map[string]bool{}
	expressions := map[string]string{}
	var patterns []nfa.Pattern
	var errs []error

	for _, r := range src.Rules {
		if seen[r.Name] {
			errs = append(errs, spagerr.InvalidPattern(spagerr.SubDuplicateTokenName, -1,
				fmt.Sprintf("duplicate token name %q", r.Name)))
			continue
		}
		seen[r.Name] = true

		ast, err := regex.Parse(r.Pattern)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.Name, err))
			continue
		}
		patterns = append(patterns, nfa.Pattern{Name: r.Name, AST: ast})
		expressions[r.Name] = r.Pattern
	}

	if len(errs) > 0 {
		return nil, nil, &CompileError{SourceName: src.Name, Errs: errs}
	}

	combined, err := nfa.Merge(patterns)
	if err != nil {
		return nil, nil, err
	}
	d, shadows, err := dfa.Build(src.Name, expressions, combined)
	if err != nil {
		return nil, nil, err
	}
	return d, shadows, nil
}

// MustCompile is like Compile but panics on error, for package-init-time
// use (spec.md §13 supplement, mirroring coregx/coregex's MustCompile).
func MustCompile(src Source) *dfa.DFA {
	d, _, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return d
}
