package nfa

import (
	"fmt"

	"github.com/spag/spag/regex"
	"github.com/spag/spag/spagerr"
)

// Pattern is one named pattern to compile into a combined NFA, in
// declaration order.
type Pattern struct {
	Name string
	AST  *regex.Node
}

// fragment is a Thompson NFA fragment with a single entry and single exit
// state (spec §4.3: every construction rule produces exactly this shape).
// exit always starts life as a placeholder state with no outgoing edges;
// composing fragments patches exit.Out1 to wire it into the next fragment,
// and the outermost fragment's exit is finally turned into a real accept
// state by Compile/Merge.
type fragment struct {
	entry StateID
	exit  StateID
}

// builder is the arena used while constructing one combined NFA.
type builder struct {
	states []State
}

func (b *builder) alloc(s State) StateID {
	b.states = append(b.states, s)
	return StateID(len(b.states) - 1)
}

func (b *builder) patch(id StateID, target StateID) {
	b.states[id].Out1 = target
}

func placeholder() State {
	return State{Out1: InvalidState, Out2: InvalidState}
}

// buildAtom implements spec §4.3's "atom(c): two states, edge labeled c".
func (b *builder) buildAtom(c byte) fragment {
	exit := b.alloc(placeholder())
	entry := b.alloc(State{HasChar: true, Char: c, Out1: exit, Out2: InvalidState})
	return fragment{entry: entry, exit: exit}
}

// buildClass implements spec §4.3's "class(S): two states, one edge per
// c ∈ S (implemented logically)": a character class is built as the
// union of one atom fragment per member byte, so the two-outgoing-edges
// invariant of spec §3 never needs a dedicated wide-fanout state kind.
func (b *builder) buildClass(set charsetSorted) fragment {
	bytes := set
	frag := b.buildAtom(bytes[0])
	for _, c := range bytes[1:] {
		frag = b.buildUnion(frag, b.buildAtom(c))
	}
	return frag
}

// buildConcat implements spec §4.3's "concat(A,B): epsilon-link exit of A
// to entry of B."
func (b *builder) buildConcat(a, c fragment) fragment {
	b.patch(a.exit, c.entry)
	return fragment{entry: a.entry, exit: c.exit}
}

// buildUnion implements spec §4.3's "union(A,B): new entry with two
// epsilon edges; new exit with two epsilon in-edges."
func (b *builder) buildUnion(a, c fragment) fragment {
	exit := b.alloc(placeholder())
	entry := b.alloc(State{Out1: a.entry, Out2: c.entry})
	b.patch(a.exit, exit)
	b.patch(c.exit, exit)
	return fragment{entry: entry, exit: exit}
}

// buildStar implements spec §4.3's "star(E): new entry with epsilon into
// E and into new exit; exit of E epsilons back to entry and forward to
// new exit."
func (b *builder) buildStar(e fragment) fragment {
	exit := b.alloc(placeholder())
	entry := b.alloc(State{Out1: e.entry, Out2: exit})
	b.patch(e.exit, entry)
	return fragment{entry: entry, exit: exit}
}

// buildPlus implements spec §4.3's "plus(E): star(E) with a required-first
// traversal through E": entry is E's own entry (no skipping E), and E's
// exit splits between looping back into E and leaving.
func (b *builder) buildPlus(e fragment) fragment {
	exit := b.alloc(placeholder())
	split := b.alloc(State{Out1: e.entry, Out2: exit})
	b.patch(e.exit, split)
	return fragment{entry: e.entry, exit: exit}
}

// buildQuestion implements spec §4.3's "question(E): entry epsilons to
// both E's entry and the exit."
func (b *builder) buildQuestion(e fragment) fragment {
	exit := b.alloc(placeholder())
	entry := b.alloc(State{Out1: e.entry, Out2: exit})
	b.patch(e.exit, exit)
	return fragment{entry: entry, exit: exit}
}

// build recursively compiles an AST node into a fragment.
func (b *builder) build(n *regex.Node) (fragment, error) {
	switch n.Kind {
	case regex.NodeAtom:
		return b.buildAtom(n.Char), nil
	case regex.NodeClass:
		sorted := n.Class.Sorted()
		if len(sorted) == 0 {
			return fragment{}, spagerr.Internal("character class resolved to an empty set", nil)
		}
		return b.buildClass(sorted), nil
	case regex.NodeConcat:
		l, err := b.build(n.Left)
		if err != nil {
			return fragment{}, err
		}
		r, err := b.build(n.Right)
		if err != nil {
			return fragment{}, err
		}
		return b.buildConcat(l, r), nil
	case regex.NodeUnion:
		l, err := b.build(n.Left)
		if err != nil {
			return fragment{}, err
		}
		r, err := b.build(n.Right)
		if err != nil {
			return fragment{}, err
		}
		return b.buildUnion(l, r), nil
	case regex.NodeStar:
		e, err := b.build(n.Left)
		if err != nil {
			return fragment{}, err
		}
		return b.buildStar(e), nil
	case regex.NodePlus:
		e, err := b.build(n.Left)
		if err != nil {
			return fragment{}, err
		}
		return b.buildPlus(e), nil
	case regex.NodeQuestion:
		e, err := b.build(n.Left)
		if err != nil {
			return fragment{}, err
		}
		return b.buildQuestion(e), nil
	default:
		return fragment{}, spagerr.Internal(fmt.Sprintf("unknown AST node kind %v", n.Kind), nil)
	}
}

// charsetSorted is a canonical ascending list of member bytes, as returned
// by charset.Set.Sorted.
type charsetSorted = []byte

// Compile builds the Thompson NFA for a single named pattern.
func Compile(name string, ast *regex.Node) (*NFA, error) {
	return Merge([]Pattern{{Name: name, AST: ast}})
}

// Merge builds the combined Thompson NFA for a set of named patterns,
// sharing one synthetic start with an epsilon path into each pattern's
// start state, in declaration order (spec §3, §4.3, §9).
func Merge(patterns []Pattern) (*NFA, error) {
	if len(patterns) == 0 {
		return nil, spagerr.Internal("no patterns to merge", nil)
	}

	b := &builder{}
	starts := make([]StateID, len(patterns))
	declaration := make([]string, len(patterns))

	for i, p := range patterns {
		frag, err := b.build(p.AST)
		if err != nil {
			return nil, err
		}
		b.states[frag.exit].Accept = p.Name
		starts[i] = frag.entry
		declaration[i] = p.Name
	}

	start := starts[0]
	if len(starts) > 1 {
		cur := starts[len(starts)-1]
		for i := len(starts) - 2; i >= 0; i-- {
			cur = b.alloc(State{Out1: starts[i], Out2: cur})
		}
		start = cur
	}

	return &NFA{states: b.states, start: start, declaration: declaration}, nil
}
