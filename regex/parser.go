package regex

import "github.com/spag/spag/spagerr"

// operator tags an entry on the shunting-yard operator stack. opLParen is
// a sentinel marking a pushed '(' rather than a real binary operator.
type operator int

const (
	opConcat operator = iota
	opUnion
	opLParen
)

// precedence returns the binding strength of a binary operator: higher
// binds tighter. Concatenation binds tighter than union (spec §4.2:
// "precedence * + ? > . > |"); unary postfix operators are applied
// immediately at scan time and never enter the operator stack.
func precedence(op operator) int {
	if op == opConcat {
		return 2
	}
	return 1
}

// Parse runs the classical shunting-yard algorithm (spec §4.2) over the
// pattern's lexeme stream and returns the resulting AST.
func Parse(pattern string) (*Node, error) {
	tokens, err := lex(pattern)
	if err != nil {
		return nil, err
	}
	return parseTokens(tokens)
}

func parseTokens(tokens []Token) (*Node, error) {
	var output []*Node
	var ops []operator

	popOne := func() (*Node, error) {
		if len(output) == 0 {
			return nil, spagerr.MalformedExpression(0, "operator applied with no operand")
		}
		n := output[len(output)-1]
		output = output[:len(output)-1]
		return n, nil
	}

	applyTop := func() error {
		op := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		right, err := popOne()
		if err != nil {
			return err
		}
		left, err := popOne()
		if err != nil {
			return err
		}
		switch op {
		case opConcat:
			output = append(output, Concat(left, right))
		case opUnion:
			output = append(output, Union(left, right))
		}
		return nil
	}

	// pushBinary pops all higher-or-equal precedence operators (left
	// associative, per spec §4.2) before pushing op, per classical
	// shunting-yard.
	pushBinary := func(op operator) error {
		for len(ops) > 0 && ops[len(ops)-1] != opLParen && precedence(ops[len(ops)-1]) >= precedence(op) {
			if err := applyTop(); err != nil {
				return err
			}
		}
		ops = append(ops, op)
		return nil
	}

	lastWasOperand := false

	maybeInjectConcat := func() error {
		if lastWasOperand {
			return pushBinary(opConcat)
		}
		return nil
	}

	for _, tok := range tokens {
		switch tok.Kind {
		case TokAtom:
			if err := maybeInjectConcat(); err != nil {
				return nil, err
			}
			output = append(output, Atom(tok.Char))
			lastWasOperand = true

		case TokClass:
			if err := maybeInjectConcat(); err != nil {
				return nil, err
			}
			output = append(output, Class(tok.Class))
			lastWasOperand = true

		case TokLParen:
			if err := maybeInjectConcat(); err != nil {
				return nil, err
			}
			ops = append(ops, opLParen)
			lastWasOperand = false

		case TokRParen:
			found := false
			for len(ops) > 0 {
				if ops[len(ops)-1] == opLParen {
					ops = ops[:len(ops)-1]
					found = true
					break
				}
				if err := applyTop(); err != nil {
					return nil, err
				}
			}
			if !found {
				// unreachable: lex rejects ')' with no matching '(' before
				// the parser ever sees a token stream.
				return nil, spagerr.Internal("unbalanced ')' survived lexing", nil)
			}
			lastWasOperand = true

		case TokStar, TokPlus, TokQuestion:
			if !lastWasOperand {
				return nil, spagerr.MalformedExpression(tok.Pos, "repetition operator with no preceding operand")
			}
			operand, err := popOne()
			if err != nil {
				return nil, err
			}
			switch tok.Kind {
			case TokStar:
				output = append(output, Star(operand))
			case TokPlus:
				output = append(output, Plus(operand))
			case TokQuestion:
				output = append(output, Question(operand))
			}
			lastWasOperand = true

		case TokUnion:
			if !lastWasOperand {
				return nil, spagerr.MalformedExpression(tok.Pos, "'|' with no left operand")
			}
			if err := pushBinary(opUnion); err != nil {
				return nil, err
			}
			lastWasOperand = false

		case TokConcat:
			if !lastWasOperand {
				return nil, spagerr.MalformedExpression(tok.Pos, "'.' with no left operand")
			}
			if err := pushBinary(opConcat); err != nil {
				return nil, err
			}
			lastWasOperand = false
		}
	}

	for len(ops) > 0 {
		if ops[len(ops)-1] == opLParen {
			// unreachable: lex rejects '(' with no matching ')' before the
			// parser ever sees a token stream.
			return nil, spagerr.Internal("unbalanced '(' survived lexing", nil)
		}
		if err := applyTop(); err != nil {
			return nil, err
		}
	}

	if len(output) != 1 {
		return nil, spagerr.MalformedExpression(0, "expression does not reduce to a single term")
	}
	return output[0], nil
}
