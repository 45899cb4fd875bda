package grammar

import (
	"sort"

	"github.com/spag/spag/bnf"
)

// Compile runs the FIRST/FOLLOW/PREDICT fixpoint solver and builds the
// LL(1) table for g (spec §4.6, §4.7). It never fails: an invalid grammar
// surfaces as populated Conflicts, per spec §7's "the parser compiler
// always returns a table".
func Compile(g *bnf.Grammar) (*Table, error) {
	productions := g.Productions()
	nonterminals := g.Nonterminals()
	terminals := g.Terminals()

	first := computeFirst(g, productions, nonterminals)
	follow := computeFollow(g, productions, nonterminals, first)

	t := &Table{
		name:         g.Name(),
		start:        g.Start(),
		terminals:    terminals,
		nonterminals: nonterminals,
		productions:  productions,
		cells:        map[cellKey][]int{},
		first:        first,
		follow:       follow,
	}

	for i, p := range productions {
		predict := predictSet(firstOfSequence(p.RHS, first), follow[p.LHS])
		for _, term := range sortedSetMembers(predict) {
			key := cellKey{p.LHS, term}
			t.cells[key] = append(t.cells[key], i)
		}
	}

	t.conflicts = findConflicts(t.cells)
	return t, nil
}

// MustCompile is like Compile but panics on error. Compile never returns
// an error today (conflicts are data, not failures), but MustCompile is
// kept so callers have the same two-form API as scanner.Compile/
// MustCompile (spec.md §13 supplement).
func MustCompile(g *bnf.Grammar) *Table {
	t, err := Compile(g)
	if err != nil {
		panic(err)
	}
	return t
}

// computeFirst implements spec §4.6's FIRST equations by least-fixpoint
// iteration: "FIRST(X) for terminal X = {X}. For nonterminal A, union over
// each production A -> α of FIRST(α)."
func computeFirst(g *bnf.Grammar, productions []bnf.Production, nonterminals []string) map[string]map[string]bool {
	first := map[string]map[string]bool{}
	for _, term := range g.Terminals() {
		first[term] = map[string]bool{term: true}
	}
	for _, nt := range nonterminals {
		first[nt] = map[string]bool{}
	}

	for {
		changed := false
		for _, p := range productions {
			rhsFirst := firstOfSequence(p.RHS, first)
			for sym := range rhsFirst {
				if !first[p.LHS][sym] {
					first[p.LHS][sym] = true
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}
	return first
}

// firstOfSequence computes FIRST(X1 X2 ... Xn) from already-known (or
// partially-known, during fixpoint iteration) per-symbol FIRST sets, per
// spec §4.6: "FIRST(ε) = {ε}; FIRST(Xβ) = (FIRST(X) \ {ε}) ∪ (FIRST(β) if
// ε ∈ FIRST(X) else ∅)".
func firstOfSequence(seq []string, first map[string]map[string]bool) map[string]bool {
	result := map[string]bool{}
	nullablePrefix := true
	for _, sym := range seq {
		fx := first[sym]
		for t := range fx {
			if t != Epsilon {
				result[t] = true
			}
		}
		if !fx[Epsilon] {
			nullablePrefix = false
			break
		}
	}
	if nullablePrefix {
		result[Epsilon] = true
	}
	return result
}

// computeFollow implements spec §4.6's FOLLOW equations by least-fixpoint
// iteration.
func computeFollow(g *bnf.Grammar, productions []bnf.Production, nonterminals []string, first map[string]map[string]bool) map[string]map[string]bool {
	follow := map[string]map[string]bool{}
	for _, nt := range nonterminals {
		follow[nt] = map[string]bool{}
	}
	follow[g.Start()][bnf.EndMarker] = true

	for {
		changed := false
		for _, p := range productions {
			for i, sym := range p.RHS {
				if !g.IsNonterminal(sym) {
					continue
				}
				beta := p.RHS[i+1:]
				firstBeta := firstOfSequence(beta, first)
				for t := range firstBeta {
					if t == Epsilon {
						continue
					}
					if !follow[sym][t] {
						follow[sym][t] = true
						changed = true
					}
				}
				if firstBeta[Epsilon] {
					for t := range follow[p.LHS] {
						if !follow[sym][t] {
							follow[sym][t] = true
							changed = true
						}
					}
				}
			}
		}
		if !changed {
			break
		}
	}
	return follow
}

// predictSet implements spec §4.6's PREDICT(A -> α) = (FIRST(α) \ {ε}) ∪
// (FOLLOW(A) if ε ∈ FIRST(α) else ∅).
func predictSet(firstAlpha, followA map[string]bool) map[string]bool {
	result := map[string]bool{}
	for t := range firstAlpha {
		if t != Epsilon {
			result[t] = true
		}
	}
	if firstAlpha[Epsilon] {
		for t := range followA {
			result[t] = true
		}
	}
	return result
}

// findConflicts reports every cell with more than one predicted
// production, sorted for deterministic diagnostics (spec §4.7, §8
// property 5).
func findConflicts(cells map[cellKey][]int) []Conflict {
	var out []Conflict
	for key, prods := range cells {
		if len(prods) > 1 {
			sorted := append([]int(nil), prods...)
			sort.Ints(sorted)
			out = append(out, Conflict{Nonterminal: key.Nonterminal, Terminal: key.Terminal, Productions: sorted})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Nonterminal != out[j].Nonterminal {
			return out[i].Nonterminal < out[j].Nonterminal
		}
		return out[i].Terminal < out[j].Terminal
	})
	return out
}
