// Package dfa implements spec §4.4: subset construction of a reachable DFA
// from a combined Thompson NFA, totalization against an explicit sink
// state, and Hopcroft partition-refinement minimization. The result is a
// read-only compiled artifact per spec §6.3.
//
// Modeled structurally on coregx/coregex/nfa/nfa.go's arena-plus-accessor
// shape; the subset-construction, totalization and minimization algorithms
// themselves are written fresh; see DESIGN.md.
package dfa

import "fmt"

// State identifies a DFA state by its dense index, 0..NumStates()-1.
type State int

// DFA is a total, minimal, deterministic finite automaton recognizing the
// union of a set of named patterns (spec §4.4, §6.3).
type DFA struct {
	name        string
	expressions map[string]string // token name -> source pattern, for diagnostics
	numStates   int
	alphabet    []byte // ascending, canonical
	start       State
	sink        State
	accepting   map[State]string    // state -> accepting token name
	trans       []map[byte]State    // trans[s][c] = target; total after totalize
}

// Name returns the scanner-level name this DFA was compiled for.
func (d *DFA) Name() string { return d.name }

// Expressions returns a copy of the token name -> source pattern map.
func (d *DFA) Expressions() map[string]string {
	out := make(map[string]string, len(d.expressions))
	for k, v := range d.expressions {
		out[k] = v
	}
	return out
}

// States returns every state index, 0..NumStates()-1.
func (d *DFA) States() []State {
	out := make([]State, d.numStates)
	for i := range out {
		out[i] = State(i)
	}
	return out
}

// NumStates returns the number of states.
func (d *DFA) NumStates() int { return d.numStates }

// Alphabet returns a copy of the ascending, canonical input alphabet.
func (d *DFA) Alphabet() []byte {
	out := make([]byte, len(d.alphabet))
	copy(out, d.alphabet)
	return out
}

// Start returns the start state.
func (d *DFA) Start() State { return d.start }

// Sink returns the distinguished non-accepting dead state that every
// undefined transition totalizes into (spec §4.4 step "totalize").
func (d *DFA) Sink() State { return d.sink }

// Accepting returns a copy of the state -> accepting-token-name map.
func (d *DFA) Accepting() map[State]string {
	out := make(map[State]string, len(d.accepting))
	for k, v := range d.accepting {
		out[k] = v
	}
	return out
}

// IsAccepting reports whether s is an accepting state, and its token name.
func (d *DFA) IsAccepting(s State) (string, bool) {
	name, ok := d.accepting[s]
	return name, ok
}

// Transition returns the total transition function's target for (s, c).
// Every (state, alphabet-char) pair is defined after totalization; c
// outside the alphabet has no defined transition.
func (d *DFA) Transition(s State, c byte) (State, bool) {
	if int(s) < 0 || int(s) >= len(d.trans) {
		return 0, false
	}
	t, ok := d.trans[s][c]
	return t, ok
}

// Accepts is a reference whole-input simulator: it walks the total
// transition function from Start() and reports whether the final state is
// accepting. This is not a scanning/matching engine (spec.md's Non-goals
// exclude runtime scanning) — it exists only to validate compiled DFAs in
// tests and the demonstration CLI's "scan" subcommand, per SPEC_FULL.md §13.
func (d *DFA) Accepts(s string) bool {
	_, ok := d.AcceptedAs(s)
	return ok
}

// AcceptedAs is Accepts plus the winning token name, for diagnostics.
func (d *DFA) AcceptedAs(s string) (string, bool) {
	cur := d.start
	for i := 0; i < len(s); i++ {
		next, ok := d.Transition(cur, s[i])
		if !ok {
			return "", false
		}
		cur = next
	}
	return d.IsAccepting(cur)
}

// String renders a debug summary.
func (d *DFA) String() string {
	return fmt.Sprintf("DFA{name: %s, states: %d, alphabet: %d, start: %d, sink: %d, accepting: %d}",
		d.name, d.numStates, len(d.alphabet), d.start, d.sink, len(d.accepting))
}
