package bnf

import "testing"

func TestInternalizeClassifiesSymbols(t *testing.T) {
	src := Source{
		Name:  "arith",
		Start: "E",
		Productions: []Production{
			{LHS: "E", RHS: []string{"E", "+", "T"}},
			{LHS: "E", RHS: []string{"T"}},
			{LHS: "T", RHS: []string{"id"}},
		},
	}
	g, err := Internalize(src)
	if err != nil {
		t.Fatalf("Internalize: %v", err)
	}
	if !g.IsNonterminal("E") || !g.IsNonterminal("T") {
		t.Errorf("E and T should be nonterminals")
	}
	if !g.IsTerminal("+") || !g.IsTerminal("id") || !g.IsTerminal(EndMarker) {
		t.Errorf("+, id and $ should be terminals")
	}
	if g.IsNonterminal("+") || g.IsTerminal("E") {
		t.Errorf("classification must be mutually exclusive for declared symbols")
	}
}

func TestInternalizeEpsilonProduction(t *testing.T) {
	src := Source{
		Name:  "eps",
		Start: "S",
		Productions: []Production{
			{LHS: "S", RHS: []string{"a", "S", "b"}},
			{LHS: "S", RHS: nil},
		},
	}
	g, err := Internalize(src)
	if err != nil {
		t.Fatalf("Internalize: %v", err)
	}
	prods := g.Productions()
	if len(prods[1].RHS) != 0 {
		t.Errorf("expected an epsilon (empty RHS) production, got %v", prods[1].RHS)
	}
}

func TestInternalizeRejectsUnknownStart(t *testing.T) {
	src := Source{
		Name:  "bad",
		Start: "Z",
		Productions: []Production{
			{LHS: "S", RHS: []string{"a"}},
		},
	}
	if _, err := Internalize(src); err == nil {
		t.Fatalf("expected an error for unknown start symbol")
	}
}

func TestInternalizeRejectsNoProductions(t *testing.T) {
	if _, err := Internalize(Source{Name: "empty", Start: "S"}); err == nil {
		t.Fatalf("expected an error for a grammar with no productions")
	}
}

func TestParseProductionsPipeShorthand(t *testing.T) {
	prods, err := ParseProductions("S -> a S b | \n# a comment\nT -> id")
	if err != nil {
		t.Fatalf("ParseProductions: %v", err)
	}
	if len(prods) != 3 {
		t.Fatalf("expected 3 productions, got %d: %v", len(prods), prods)
	}
	if prods[0].LHS != "S" || len(prods[0].RHS) != 3 {
		t.Errorf("first alternative parsed wrong: %+v", prods[0])
	}
	if prods[1].LHS != "S" || len(prods[1].RHS) != 0 {
		t.Errorf("second (epsilon) alternative parsed wrong: %+v", prods[1])
	}
	if prods[2].LHS != "T" {
		t.Errorf("expected comment line to be skipped, got %+v", prods[2])
	}
}
