// Package regex implements spec §4.1 (validator/expander) and §4.2
// (shunting-yard to AST): turning a pattern string into the tagged-variant
// AST of spec §3, ready for Thompson construction by package nfa.
//
// Grounded on quasilyte/regex/syntax's position-tracked Expr/Operation
// shape, narrowed to this system's closed §6.1 grammar.
package regex

import "github.com/spag/spag/charset"

// NodeKind is the tag of the regex AST's tagged variant (spec §3).
type NodeKind int

const (
	NodeAtom NodeKind = iota
	NodeClass
	NodeConcat
	NodeUnion
	NodeStar
	NodePlus
	NodeQuestion
)

func (k NodeKind) String() string {
	switch k {
	case NodeAtom:
		return "atom"
	case NodeClass:
		return "class"
	case NodeConcat:
		return "concat"
	case NodeUnion:
		return "union"
	case NodeStar:
		return "star"
	case NodePlus:
		return "plus"
	case NodeQuestion:
		return "question"
	default:
		return "unknown"
	}
}

// Node is a regex AST node. Depending on Kind, only a subset of the
// fields is meaningful:
//
//   - NodeAtom:     Char
//   - NodeClass:    Class
//   - NodeConcat:   Left, Right
//   - NodeUnion:    Left, Right
//   - NodeStar:     Left (the repeated sub-expression)
//   - NodePlus:     Left
//   - NodeQuestion: Left
type Node struct {
	Kind  NodeKind
	Char  byte
	Class charset.Set
	Left  *Node
	Right *Node
}

// Atom returns a leaf node matching exactly the byte c.
func Atom(c byte) *Node { return &Node{Kind: NodeAtom, Char: c} }

// Class returns a leaf node matching any byte in set.
func Class(set charset.Set) *Node { return &Node{Kind: NodeClass, Class: set} }

// Concat returns the concatenation of l then r.
func Concat(l, r *Node) *Node { return &Node{Kind: NodeConcat, Left: l, Right: r} }

// Union returns the alternation of l or r.
func Union(l, r *Node) *Node { return &Node{Kind: NodeUnion, Left: l, Right: r} }

// Star returns zero-or-more repetitions of e.
func Star(e *Node) *Node { return &Node{Kind: NodeStar, Left: e} }

// Plus returns one-or-more repetitions of e.
func Plus(e *Node) *Node { return &Node{Kind: NodePlus, Left: e} }

// Question returns zero-or-one occurrences of e.
func Question(e *Node) *Node { return &Node{Kind: NodeQuestion, Left: e} }
