// Package grammar implements spec §4.6 (FIRST/FOLLOW/PREDICT least-fixpoint
// solver) and §4.7 (LL(1) predictive parse table builder with conflict
// detection). Conflicts are data, not errors (spec §9): Compile always
// returns a table, with any conflicting cells preserved for diagnosis.
package grammar

import (
	"sort"

	"github.com/spag/spag/bnf"
)

// Epsilon is the internal empty-string marker used inside FIRST sets; it
// is never a member of Table's Terminals (spec §4.6: FIRST(ε) = {ε}).
const Epsilon = ""

// cellKey addresses one parse-table cell.
type cellKey struct {
	Nonterminal string
	Terminal    string
}

// Conflict records that more than one production was predicted for the
// same (nonterminal, terminal) cell (spec §4.7, §8 property 5).
type Conflict struct {
	Nonterminal string
	Terminal    string
	Productions []int
}

// Table is the compiled, read-only LL(1) parse table (spec §6.3).
type Table struct {
	name         string
	start        string
	terminals    []string
	nonterminals []string
	productions  []bnf.Production
	cells        map[cellKey][]int
	conflicts    []Conflict
	first        map[string]map[string]bool
	follow       map[string]map[string]bool
}

// Name returns the grammar's diagnostic name.
func (t *Table) Name() string { return t.name }

// Start returns the start nonterminal.
func (t *Table) Start() string { return t.start }

// Terminals returns every terminal, including the end-marker, sorted.
func (t *Table) Terminals() []string { return append([]string(nil), t.terminals...) }

// Nonterminals returns every nonterminal, sorted.
func (t *Table) Nonterminals() []string { return append([]string(nil), t.nonterminals...) }

// Productions returns the production list, indices matching the original
// bnf.Grammar's declaration order (spec §5).
func (t *Table) Productions() []bnf.Production {
	out := make([]bnf.Production, len(t.productions))
	copy(out, t.productions)
	return out
}

// Predicts returns the production indices in cell (nonterminal, terminal),
// in ascending order. A cardinality > 1 marks an LL(1) conflict (spec
// §6.3: "table (map: (nonterminal, terminal-or-$) -> list of production
// indices)").
func (t *Table) Predicts(nonterminal, terminal string) []int {
	cell := t.cells[cellKey{nonterminal, terminal}]
	out := make([]int, len(cell))
	copy(out, cell)
	return out
}

// Conflicts returns every LL(1) conflict found, ordered by (nonterminal,
// terminal) for deterministic diagnostics. Empty means the grammar is
// LL(1) (spec §3: "A grammar is LL(1) iff every cell has cardinality ≤ 1").
func (t *Table) Conflicts() []Conflict {
	out := make([]Conflict, len(t.conflicts))
	copy(out, t.conflicts)
	return out
}

// First returns FIRST(sym) for a single grammar symbol (terminal or
// nonterminal); Epsilon is present iff sym is a nullable nonterminal.
func (t *Table) First(sym string) map[string]bool {
	return copySet(t.first[sym])
}

// Follow returns FOLLOW(nonterminal).
func (t *Table) Follow(nonterminal string) map[string]bool {
	return copySet(t.follow[nonterminal])
}

func copySet(s map[string]bool) map[string]bool {
	out := make(map[string]bool, len(s))
	for k := range s {
		out[k] = true
	}
	return out
}

func sortedSetMembers(s map[string]bool) []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
