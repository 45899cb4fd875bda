package dfa

import (
	"testing"

	"github.com/spag/spag/nfa"
	"github.com/spag/spag/regex"
)

func mustNFA(t *testing.T, patterns map[string]string, order []string) *nfa.NFA {
	t.Helper()
	var ps []nfa.Pattern
	for _, name := range order {
		ast, err := regex.Parse(patterns[name])
		if err != nil {
			t.Fatalf("regex.Parse(%q): %v", patterns[name], err)
		}
		ps = append(ps, nfa.Pattern{Name: name, AST: ast})
	}
	n, err := nfa.Merge(ps)
	if err != nil {
		t.Fatalf("nfa.Merge: %v", err)
	}
	return n
}

func TestBuildIntTotalAndMinimal(t *testing.T) {
	patterns := map[string]string{"INT": "[0-9]+"}
	n := mustNFA(t, patterns, []string{"INT"})
	d, shadows, err := Build("digits", patterns, n)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(shadows) != 0 {
		t.Fatalf("unexpected shadows: %v", shadows)
	}

	if !d.Accepts("4") || !d.Accepts("42") || !d.Accepts("908123") {
		t.Errorf("expected digit strings to be accepted")
	}
	if d.Accepts("") || d.Accepts("4a") || d.Accepts("a") {
		t.Errorf("expected non-digit strings to be rejected")
	}

	// Totality: every (state, alphabet char) pair has a defined target.
	for _, s := range d.States() {
		for _, c := range d.Alphabet() {
			if _, ok := d.Transition(s, c); !ok {
				t.Errorf("missing transition (%d, %q): DFA is not total", s, c)
			}
		}
	}

	// Minimality: [0-9]+ only ever needs 2 distinguishable live states
	// (before-any-digit, seen-at-least-one-digit) plus the sink.
	if d.NumStates() != 3 {
		t.Errorf("NumStates() = %d, want 3 (start, accept, sink)", d.NumStates())
	}
}

func TestBuildSinkIsDeadAndNonAccepting(t *testing.T) {
	patterns := map[string]string{"A": "a"}
	n := mustNFA(t, patterns, []string{"A"})
	d, _, err := Build("single", patterns, n)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	sink := d.Sink()
	if _, ok := d.IsAccepting(sink); ok {
		t.Errorf("sink must not be accepting")
	}
	for _, c := range d.Alphabet() {
		target, ok := d.Transition(sink, c)
		if !ok || target != sink {
			t.Errorf("sink must self-loop on every alphabet character, got (%v, %v) for %q", target, ok, c)
		}
	}
}

func TestBuildPrefixCollisionShadowWarning(t *testing.T) {
	// KEYWORD "if" declared before IDENT "[a-z]+": scanning "if" reaches a
	// DFA state whose closure contains both patterns' NFA accept states.
	patterns := map[string]string{"KEYWORD": "if", "IDENT": "[a-z]+"}
	n := mustNFA(t, patterns, []string{"KEYWORD", "IDENT"})
	d, shadows, err := Build("lang", patterns, n)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !d.Accepts("if") || !d.Accepts("xyz") {
		t.Fatalf("expected both patterns' languages to be accepted")
	}
	found := false
	for _, sh := range shadows {
		if sh.Winner == "KEYWORD" && sh.Shadowed == "IDENT" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a KEYWORD-over-IDENT shadow warning, got %v", shadows)
	}
}

func TestBuildUnionAcceptsBothLanguages(t *testing.T) {
	patterns := map[string]string{"A": "ab", "B": "a"}
	n := mustNFA(t, patterns, []string{"A", "B"})
	d, _, err := Build("two", patterns, n)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !d.Accepts("a") || !d.Accepts("ab") {
		t.Fatalf("expected both languages accepted")
	}
}
