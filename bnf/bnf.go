// Package bnf implements spec §4.5: reading a BNF rule list and classifying
// every symbol as terminal or nonterminal by LHS-set membership, with no
// lexical convention required (§6.2: "<Foo>" is just a customary spelling,
// never load-bearing).
package bnf

import (
	"sort"
	"strconv"

	"github.com/spag/spag/spagerr"
)

// EndMarker is the synthetic lookahead terminal "$" appended to every
// grammar's terminal set (spec §4.5, §6.3).
const EndMarker = "$"

// Production is one BNF rule: LHS -> RHS. An empty RHS is the epsilon
// production (spec §3).
type Production struct {
	LHS string
	RHS []string
}

// Source is an unclassified BNF rule set as supplied by a caller: a
// grammar-name, a declared start nonterminal, and an ordered production
// list (spec §3: "ordered list of productions").
type Source struct {
	Name        string
	Start       string
	Productions []Production
}

// Grammar is the internalized result of classifying a Source's symbols
// (spec §4.5). Nonterminals are exactly the distinct LHS symbols;
// terminals are every other RHS symbol plus EndMarker.
type Grammar struct {
	name         string
	start        string
	nonterminals map[string]bool
	terminals    map[string]bool
	productions  []Production
}

// Internalize classifies src's symbols and validates its invariants (spec
// §4.5: "the declared start symbol must be in the nonterminal set; there
// must be at least one production").
func Internalize(src Source) (*Grammar, error) {
	if len(src.Productions) == 0 {
		return nil, spagerr.MalformedGrammar(spagerr.SubNoProductions, "", "grammar has no productions")
	}

	nonterminals := map[string]bool{}
	for i, p := range src.Productions {
		if p.LHS == "" {
			return nil, spagerr.MalformedGrammar(spagerr.SubMalformedRecord, "",
				productionRecordMessage(i))
		}
		nonterminals[p.LHS] = true
	}

	if !nonterminals[src.Start] {
		return nil, spagerr.MalformedGrammar(spagerr.SubUnknownStart, src.Start,
			"start symbol is not a declared LHS nonterminal")
	}

	// Classification by LHS-set membership (§4.5): a symbol that is both a
	// declared LHS and appears on some RHS is a nonterminal, not an error
	// (§4.5: "it becomes a nonterminal").
	terminals := map[string]bool{EndMarker: true}
	for _, p := range src.Productions {
		for _, sym := range p.RHS {
			if sym == "" {
				return nil, spagerr.MalformedGrammar(spagerr.SubMalformedRecord, p.LHS,
					"RHS symbol must not be the empty string; use an empty RHS slice for epsilon")
			}
			if !nonterminals[sym] {
				terminals[sym] = true
			}
		}
	}

	productions := make([]Production, len(src.Productions))
	copy(productions, src.Productions)

	return &Grammar{
		name:         src.Name,
		start:        src.Start,
		nonterminals: nonterminals,
		terminals:    terminals,
		productions:  productions,
	}, nil
}

func productionRecordMessage(index int) string {
	return "production at index " + strconv.Itoa(index) + " has an empty LHS"
}

// Name returns the grammar's diagnostic name.
func (g *Grammar) Name() string { return g.name }

// Start returns the start nonterminal.
func (g *Grammar) Start() string { return g.start }

// IsNonterminal reports whether sym was classified as a nonterminal.
func (g *Grammar) IsNonterminal(sym string) bool { return g.nonterminals[sym] }

// IsTerminal reports whether sym was classified as a terminal (including
// EndMarker).
func (g *Grammar) IsTerminal(sym string) bool { return g.terminals[sym] }

// Nonterminals returns every nonterminal, sorted for deterministic output.
func (g *Grammar) Nonterminals() []string { return sortedKeys(g.nonterminals) }

// Terminals returns every terminal (including EndMarker), sorted.
func (g *Grammar) Terminals() []string { return sortedKeys(g.terminals) }

// Productions returns the production list, indices stable and matching
// declaration order (spec §5: "production indices are assigned in
// declaration order").
func (g *Grammar) Productions() []Production {
	out := make([]Production, len(g.productions))
	copy(out, g.productions)
	return out
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
